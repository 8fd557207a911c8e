package checkout

import (
	"regexp"
	"strings"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
)

var phonePattern = regexp.MustCompile(`^09\d{8}$`)

// IsPhoneValid reports whether p is a Taiwan mobile number: 09 followed by eight digits.
func IsPhoneValid(p string) bool {
	return phonePattern.MatchString(p)
}

type Field string

const (
	FieldName    Field = "name"
	FieldPhone   Field = "phone"
	FieldStore   Field = "store"
	FieldAddress Field = "address"
)

var allFields = []Field{FieldName, FieldPhone, FieldStore, FieldAddress}

func ParseField(s string) (Field, bool) {
	for _, f := range allFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Touched records which fields the shopper has left at least once.
type Touched map[Field]bool

func (t Touched) all() Touched {
	for _, f := range allFields {
		t[f] = true
	}
	return t
}

// Validity is the per-field result of Validate. Fields that the active
// shipping mode does not check are reported valid.
type Validity struct {
	Name       bool `json:"name"`
	Phone      bool `json:"phone"`
	Store      bool `json:"store"`
	Address    bool `json:"address"`
	CanAdvance bool `json:"canAdvance"`
}

func Validate(info models.ShippingInfo, shippingType models.ShippingType, enableStoreIntegration bool) Validity {
	v := Validity{
		Name:    strings.TrimSpace(info.Name) != "",
		Phone:   IsPhoneValid(info.Phone),
		Store:   true,
		Address: true,
	}

	if shippingType == models.ShippingTypeDelivery {
		v.Address = strings.TrimSpace(info.Address) != "" &&
			info.City != "" &&
			info.District != "" &&
			HasDistrict(info.City, info.District)
	} else {
		v.Store = info.StoreName != "" && (!enableStoreIntegration || info.StoreType != nil)
	}

	v.CanAdvance = v.Name && v.Phone && v.Store && v.Address
	return v
}

var fieldMessages = map[Field]string{
	FieldName:    "請輸入姓名",
	FieldPhone:   "格式錯誤 (09xx...)",
	FieldStore:   "請點擊選擇",
	FieldAddress: "請完整填寫地址",
}

// Errors returns the messages of invalid fields that have been touched.
func (v Validity) Errors(touched Touched) map[Field]string {
	errs := make(map[Field]string)
	check := func(f Field, ok bool) {
		if !ok && touched[f] {
			errs[f] = fieldMessages[f]
		}
	}
	check(FieldName, v.Name)
	check(FieldPhone, v.Phone)
	check(FieldStore, v.Store)
	check(FieldAddress, v.Address)
	return errs
}
