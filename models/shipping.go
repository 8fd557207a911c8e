package models

type StoreType string

const (
	StoreTypeSevenEleven StoreType = "seven-eleven"
	StoreTypeFamilyMart  StoreType = "family-mart"
	StoreTypeManual      StoreType = "manual"
)

var storeTypeLabels = map[StoreType]string{
	StoreTypeSevenEleven: "7-ELEVEN",
	StoreTypeFamilyMart:  "全家便利商店",
	StoreTypeManual:      "手動輸入",
}

func (t StoreType) Label() string {
	if label, ok := storeTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Provider reports whether t is a chain reachable through the store map.
func (t StoreType) Provider() bool {
	return t == StoreTypeSevenEleven || t == StoreTypeFamilyMart
}

type DeliveryTimeSlot string

const (
	TimeSlotUnspecified DeliveryTimeSlot = "unspecified"
	TimeSlotMorning     DeliveryTimeSlot = "morning"
	TimeSlotAfternoon   DeliveryTimeSlot = "afternoon"
	TimeSlotEvening     DeliveryTimeSlot = "evening"
)

var timeSlotLabels = map[DeliveryTimeSlot]string{
	TimeSlotUnspecified: "不指定",
	TimeSlotMorning:     "13時前",
	TimeSlotAfternoon:   "14-18時",
	TimeSlotEvening:     "18-21時",
}

func (s DeliveryTimeSlot) Label() string {
	if label, ok := timeSlotLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s DeliveryTimeSlot) Valid() bool {
	_, ok := timeSlotLabels[s]
	return ok
}

// ShippingInfo is the recipient draft edited on the first checkout step.
// Pickup fields (StoreType, StoreName) and delivery fields (City, District,
// Address, TimeSlot) coexist; the product's shipping type decides which are checked.
type ShippingInfo struct {
	Name             string           `json:"name"`
	Phone            string           `json:"phone"`
	AlternativePhone string           `json:"alternativePhone,omitempty"`
	StoreType        *StoreType       `json:"storeType"`
	StoreName        string           `json:"storeName"`
	City             string           `json:"city"`
	District         string           `json:"district"`
	Address          string           `json:"address"`
	TimeSlot         DeliveryTimeSlot `json:"timeSlot"`
}
