package advisor

import (
	"sort"
	"strings"
)

// destinationImages maps place-name fragments to representative photo
// URLs. Lookup is by longest-match substring so that more specific
// fragments ("lake como") win over overlapping shorter ones ("como").
var destinationImages = map[string]string{
	"paris":        "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800&q=80",
	"france":       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800&q=80",
	"tokyo":        "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800&q=80",
	"japan":        "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800&q=80",
	"kyoto":        "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800&q=80",
	"rome":         "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800&q=80",
	"italy":        "https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?w=800&q=80",
	"venice":       "https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?w=800&q=80",
	"florence":     "https://images.unsplash.com/photo-1543429258-c5ca3e1c94b0?w=800&q=80",
	"amalfi":       "https://images.unsplash.com/photo-1534008897995-27a23e859048?w=800&q=80",
	"como":         "https://images.unsplash.com/photo-1553452118-621e1f860f43?w=800&q=80",
	"lake como":    "https://images.unsplash.com/photo-1553452118-621e1f860f43?w=800&q=80",
	"cinque terre": "https://images.unsplash.com/photo-1516483638261-f4dbaf036963?w=800&q=80",
	"tuscany":      "https://images.unsplash.com/photo-1523531294919-4bcd7c65e216?w=800&q=80",
	"positano":     "https://images.unsplash.com/photo-1534008897995-27a23e859048?w=800&q=80",
	"london":       "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&q=80",
	"england":      "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&q=80",
	"barcelona":    "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=800&q=80",
	"spain":        "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=800&q=80",
	"madrid":       "https://images.unsplash.com/photo-1539037116277-4db20889f2d4?w=800&q=80",
	"lisbon":       "https://images.unsplash.com/photo-1585208798174-6cedd86e019a?w=800&q=80",
	"portugal":     "https://images.unsplash.com/photo-1585208798174-6cedd86e019a?w=800&q=80",
	"amsterdam":    "https://images.unsplash.com/photo-1534351590666-13e3e96b5017?w=800&q=80",
	"netherlands":  "https://images.unsplash.com/photo-1534351590666-13e3e96b5017?w=800&q=80",
	"new york":     "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800&q=80",
	"nyc":          "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800&q=80",
	"san francisco": "https://images.unsplash.com/photo-1501594907352-04cda38ebc29?w=800&q=80",
	"los angeles":  "https://images.unsplash.com/photo-1534190760961-74e8c1c5c3da?w=800&q=80",
	"bali":         "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800&q=80",
	"indonesia":    "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800&q=80",
	"thailand":     "https://images.unsplash.com/photo-1528181304800-259b08848526?w=800&q=80",
	"bangkok":      "https://images.unsplash.com/photo-1508009603885-50cf7c579365?w=800&q=80",
	"phuket":       "https://images.unsplash.com/photo-1589394815804-964ed0be2eb5?w=800&q=80",
	"vietnam":      "https://images.unsplash.com/photo-1557750255-c76072a7aad1?w=800&q=80",
	"hanoi":        "https://images.unsplash.com/photo-1557750255-c76072a7aad1?w=800&q=80",
	"morocco":      "https://images.unsplash.com/photo-1489749798305-4fea3ae63d43?w=800&q=80",
	"marrakech":    "https://images.unsplash.com/photo-1597212618440-806262de4f6b?w=800&q=80",
	"greece":       "https://images.unsplash.com/photo-1533105079780-92b9be482077?w=800&q=80",
	"santorini":    "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800&q=80",
	"athens":       "https://images.unsplash.com/photo-1555993539-1732b0258235?w=800&q=80",
	"mykonos":      "https://images.unsplash.com/photo-1601581875309-fafbf2d3ed3a?w=800&q=80",
	"croatia":      "https://images.unsplash.com/photo-1555990538-1e6c89d76b91?w=800&q=80",
	"dubrovnik":    "https://images.unsplash.com/photo-1555990538-1e6c89d76b91?w=800&q=80",
	"iceland":      "https://images.unsplash.com/photo-1504893524553-b855bce32c67?w=800&q=80",
	"reykjavik":    "https://images.unsplash.com/photo-1504893524553-b855bce32c67?w=800&q=80",
	"norway":       "https://images.unsplash.com/photo-1520769669658-f07657f5a307?w=800&q=80",
	"sweden":       "https://images.unsplash.com/photo-1509356843151-3e7d96241e11?w=800&q=80",
	"stockholm":    "https://images.unsplash.com/photo-1509356843151-3e7d96241e11?w=800&q=80",
	"copenhagen":   "https://images.unsplash.com/photo-1513622470522-26c3c8a854bc?w=800&q=80",
	"denmark":      "https://images.unsplash.com/photo-1513622470522-26c3c8a854bc?w=800&q=80",
	"australia":    "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800&q=80",
	"sydney":       "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800&q=80",
	"melbourne":    "https://images.unsplash.com/photo-1514395462725-fb4566210144?w=800&q=80",
	"new zealand":  "https://images.unsplash.com/photo-1507699622108-4be3abd695ad?w=800&q=80",
	"queenstown":   "https://images.unsplash.com/photo-1507699622108-4be3abd695ad?w=800&q=80",
	"canada":       "https://images.unsplash.com/photo-1517935706615-2717063c2225?w=800&q=80",
	"vancouver":    "https://images.unsplash.com/photo-1559511260-66a68e7e7e8c?w=800&q=80",
	"toronto":      "https://images.unsplash.com/photo-1517090504586-fde19ea6066f?w=800&q=80",
	"dubai":        "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&q=80",
	"singapore":    "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?w=800&q=80",
	"hong kong":    "https://images.unsplash.com/photo-1536599018102-9f803c140fc1?w=800&q=80",
	"seoul":        "https://images.unsplash.com/photo-1538485399081-7191377e8241?w=800&q=80",
	"korea":        "https://images.unsplash.com/photo-1538485399081-7191377e8241?w=800&q=80",
	"berlin":       "https://images.unsplash.com/photo-1560969184-10fe8719e047?w=800&q=80",
	"germany":      "https://images.unsplash.com/photo-1560969184-10fe8719e047?w=800&q=80",
	"munich":       "https://images.unsplash.com/photo-1595867818082-083862f3d630?w=800&q=80",
	"vienna":       "https://images.unsplash.com/photo-1516550893923-42d28e5677af?w=800&q=80",
	"austria":      "https://images.unsplash.com/photo-1516550893923-42d28e5677af?w=800&q=80",
	"prague":       "https://images.unsplash.com/photo-1519677100203-a0e668c92439?w=800&q=80",
	"czech":        "https://images.unsplash.com/photo-1519677100203-a0e668c92439?w=800&q=80",
	"budapest":     "https://images.unsplash.com/photo-1541343672885-9be56236302a?w=800&q=80",
	"hungary":      "https://images.unsplash.com/photo-1541343672885-9be56236302a?w=800&q=80",
	"switzerland":  "https://images.unsplash.com/photo-1530122037265-a5f1f91d3b99?w=800&q=80",
	"zurich":       "https://images.unsplash.com/photo-1515488764276-beab7607c1e6?w=800&q=80",
	"scotland":     "https://images.unsplash.com/photo-1506377585622-bedcbb5f7c1e?w=800&q=80",
	"edinburgh":    "https://images.unsplash.com/photo-1506377585622-bedcbb5f7c1e?w=800&q=80",
	"ireland":      "https://images.unsplash.com/photo-1590089415225-401ed6f9db8e?w=800&q=80",
	"dublin":       "https://images.unsplash.com/photo-1549918864-48ac978761a4?w=800&q=80",
	"peru":         "https://images.unsplash.com/photo-1526392060635-9d6019884377?w=800&q=80",
	"machu picchu": "https://images.unsplash.com/photo-1526392060635-9d6019884377?w=800&q=80",
	"argentina":    "https://images.unsplash.com/photo-1589909202802-8f4aadce1849?w=800&q=80",
	"buenos aires": "https://images.unsplash.com/photo-1589909202802-8f4aadce1849?w=800&q=80",
	"brazil":       "https://images.unsplash.com/photo-1483729558449-99ef09a8c325?w=800&q=80",
	"rio":          "https://images.unsplash.com/photo-1483729558449-99ef09a8c325?w=800&q=80",
	"mexico":       "https://images.unsplash.com/photo-1518105779142-d975f22f1b0a?w=800&q=80",
	"mexico city":  "https://images.unsplash.com/photo-1518105779142-d975f22f1b0a?w=800&q=80",
	"cancun":       "https://images.unsplash.com/photo-1552074284-5e88ef1aef18?w=800&q=80",
	"tulum":        "https://images.unsplash.com/photo-1552074284-5e88ef1aef18?w=800&q=80",
	"costa rica":   "https://images.unsplash.com/photo-1519999482648-25049ddd37b1?w=800&q=80",
	"colombia":     "https://images.unsplash.com/photo-1518638150340-f706e86654de?w=800&q=80",
	"cartagena":    "https://images.unsplash.com/photo-1518638150340-f706e86654de?w=800&q=80",
	"cuba":         "https://images.unsplash.com/photo-1500759285222-a95626b934cb?w=800&q=80",
	"havana":       "https://images.unsplash.com/photo-1500759285222-a95626b934cb?w=800&q=80",
	"south africa": "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?w=800&q=80",
	"cape town":    "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?w=800&q=80",
	"egypt":        "https://images.unsplash.com/photo-1539650116574-8efeb43e2750?w=800&q=80",
	"cairo":        "https://images.unsplash.com/photo-1572252009286-268acec5ca0a?w=800&q=80",
	"india":        "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?w=800&q=80",
	"rajasthan":    "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?w=800&q=80",
	"jaipur":       "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?w=800&q=80",
	"sri lanka":    "https://images.unsplash.com/photo-1586613835341-b9a2d5c0e6e0?w=800&q=80",
	"maldives":     "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=800&q=80",
	"hawaii":       "https://images.unsplash.com/photo-1507876466758-bc54f384809c?w=800&q=80",
	"maui":         "https://images.unsplash.com/photo-1507876466758-bc54f384809c?w=800&q=80",
	"caribbean":    "https://images.unsplash.com/photo-1548574505-5e239809ee19?w=800&q=80",
	"fiji":         "https://images.unsplash.com/photo-1530053969600-caed2596d242?w=800&q=80",
	"tahiti":       "https://images.unsplash.com/photo-1516815231560-8f41ec531527?w=800&q=80",
	"bora bora":    "https://images.unsplash.com/photo-1516815231560-8f41ec531527?w=800&q=80",
	"seychelles":   "https://images.unsplash.com/photo-1589979481223-deb893043163?w=800&q=80",
}

// fallbackImages provides deterministic imagery for unmatched names,
// selected by index so a batch of unknowns gets distinct photos.
var fallbackImages = []string{
	"https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800&q=80",
	"https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800&q=80",
	"https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?w=800&q=80",
	"https://images.unsplash.com/photo-1503220317375-aaad61436b1b?w=800&q=80",
}

// imageKeys holds the table's keywords sorted by descending length so
// the first substring hit is the longest match.
var imageKeys = func() []string {
	keys := make([]string, 0, len(destinationImages))
	for k := range destinationImages {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// ResolveImage maps a destination display name to a photo URL. Total
// function: unmatched names get a fallback chosen by list position.
func ResolveImage(destinationName string, index int) string {
	nameLower := strings.ToLower(destinationName)
	for _, key := range imageKeys {
		if strings.Contains(nameLower, key) {
			return destinationImages[key]
		}
	}
	if index < 0 {
		index = -index
	}
	return fallbackImages[index%len(fallbackImages)]
}
