package checkout

import "github.com/Madhav-Gupta-28/seafood-backend-go/models"

type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// mockStores is what the simulated map returns for each chain.
var mockStores = map[models.StoreType][]Store{
	models.StoreTypeSevenEleven: {
		{ID: "711-1", Name: "信義宏運門市", Address: "台北市信義區信義路五段7號"},
		{ID: "711-2", Name: "聯合報門市", Address: "台北市信義區忠孝東路四段555號"},
		{ID: "711-3", Name: "松捷門市", Address: "台北市信義區忠孝東路五段1號"},
	},
	models.StoreTypeFamilyMart: {
		{ID: "fm-1", Name: "全家長春店", Address: "台北市中山區長春路15號"},
		{ID: "fm-2", Name: "全家京華店", Address: "台北市松山區八德路四段138號"},
		{ID: "fm-3", Name: "全家敦化店", Address: "台北市大安區敦化南路一段100號"},
	},
}

func StoresOf(t models.StoreType) []Store {
	return append([]Store(nil), mockStores[t]...)
}

func findStore(t models.StoreType, name string) (Store, bool) {
	for _, s := range mockStores[t] {
		if s.Name == name {
			return s, true
		}
	}
	return Store{}, false
}

// frozenStoreName is the store name written into the draft for chilled pickup.
func frozenStoreName(name string) string {
	return name + " (冷凍)"
}
