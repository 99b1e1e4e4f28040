package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ServiceOrderStatus tracks a repair through the bench.
type ServiceOrderStatus int

const (
	ServiceOrderReceived      ServiceOrderStatus = 0
	ServiceOrderInRepair      ServiceOrderStatus = 1
	ServiceOrderAwaitingParts ServiceOrderStatus = 2
	ServiceOrderReady         ServiceOrderStatus = 3
	ServiceOrderDelivered     ServiceOrderStatus = 4
	ServiceOrderCancelled     ServiceOrderStatus = 5
)

var serviceOrderStatusNames = [...]string{
	"Received", "InRepair", "AwaitingParts", "Ready", "Delivered", "Cancelled",
}

func (s ServiceOrderStatus) String() string {
	if int(s) < 0 || int(s) >= len(serviceOrderStatusNames) {
		return "Unknown"
	}
	return serviceOrderStatusNames[s]
}

// IsValid reports whether s is a known status.
func (s ServiceOrderStatus) IsValid() bool {
	return int(s) >= 0 && int(s) < len(serviceOrderStatusNames)
}

func (s ServiceOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ServiceOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ServiceOrderStatus(i)
		return nil
	}
	for i, name := range serviceOrderStatusNames {
		if name == str {
			*s = ServiceOrderStatus(i)
			return nil
		}
	}
	return nil
}

func (s ServiceOrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ServiceOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ServiceOrderReceived
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ServiceOrderStatus(v)
	case int:
		*s = ServiceOrderStatus(v)
	}
	return nil
}
