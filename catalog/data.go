package catalog

import "github.com/Krypton102019/dk-deli/entity"

var categories = []Category{
	{ID: "all", Name: "All", NameMM: "အားလုံး", Icon: "🍽️"},
	{ID: "myanmar", Name: "Myanmar", NameMM: "မြန်မာ", Icon: "🍜"},
	{ID: "shan", Name: "Shan", NameMM: "ရှမ်း", Icon: "🥘"},
	{ID: "chinese", Name: "Chinese", NameMM: "တရုတ်", Icon: "🥡"},
	{ID: "drinks", Name: "Drinks", NameMM: "အချိုရည်", Icon: "🧋"},
	{ID: "snacks", Name: "Snacks", NameMM: "မုန့်", Icon: "🍿"},
	{ID: "dessert", Name: "Dessert", NameMM: "အချိုပွဲ", Icon: "🍰"},
}

var restaurants = []entity.Restaurant{
	{
		ID:            "r1",
		Name:          "Golden Rice Home Kitchen",
		NameMM:        "ရွှေထမင်း အိမ်ချက်",
		Description:   "Authentic Myanmar home-style cooking with fresh local ingredients",
		DescriptionMM: "လတ်ဆတ်သော ဒေသထွက်ပစ္စည်းများဖြင့် စစ်မှန်သော မြန်မာ အိမ်ချက် အစားအသောက်များ",
		Image:         "https://images.unsplash.com/photo-1567337710282-00832b415979?w=400&h=300&fit=crop",
		CoverImage:    "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&h=400&fit=crop",
		Rating:        4.8,
		ReviewCount:   234,
		DeliveryTime:  "25-35 min",
		DeliveryFee:   1500,
		Category:      "myanmar",
		Categories:    []string{"myanmar", "snacks"},
		IsOpen:        true,
		Menu: []entity.MenuItem{
			{
				ID:            "m1-1",
				Name:          "Mohinga",
				NameMM:        "မုန့်ဟင်းခါး",
				Description:   "Traditional fish noodle soup - Myanmar's national dish",
				DescriptionMM: "ရိုးရာ ငါးဟင်းခါး ခေါက်ဆွဲ - မြန်မာ့ အမျိုးသား အစားအစာ",
				Price:         2500,
				Image:         "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400&h=300&fit=crop",
				Category:      "myanmar",
				IsPopular:     true,
				Toppings: []entity.ToppingOption{
					{ID: "extra-fish", Name: "Extra Fish Cake", NameMM: "ငါးကြော် ပိုထည့်", Price: 500},
					{ID: "extra-egg", Name: "Extra Boiled Egg", NameMM: "ကြက်ဥပြုတ် ပိုထည့်", Price: 300},
				},
			},
			{
				ID:            "m1-2",
				Name:          "Tea Leaf Salad",
				NameMM:        "လက်ဖက်သုပ်",
				Description:   "Fermented tea leaves with crunchy beans and nuts",
				DescriptionMM: "အစေ့အဆန်များနှင့် ရောသုပ်ထားသော လက်ဖက်သုပ်",
				Price:         3000,
				Image:         "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400&h=300&fit=crop",
				Category:      "myanmar",
				IsPopular:     true,
				Toppings: []entity.ToppingOption{
					{ID: "extra-nuts", Name: "Extra Nuts", NameMM: "အစေ့အဆန် ပိုထည့်", Price: 400},
				},
			},
			{
				ID:            "m1-3",
				Name:          "Coconut Noodles",
				NameMM:        "အုန်းနို့ခေါက်ဆွဲ",
				Description:   "Chicken in a rich coconut broth over wheat noodles",
				DescriptionMM: "အုန်းနို့ဟင်းရည်နှင့် ကြက်သား ခေါက်ဆွဲ",
				Price:         3500,
				Image:         "https://images.unsplash.com/photo-1555126634-323283e090fa?w=400&h=300&fit=crop",
				Category:      "myanmar",
				Toppings: []entity.ToppingOption{
					{ID: "extra-chicken", Name: "Extra Chicken", NameMM: "ကြက်သား ပိုထည့်", Price: 800},
					{ID: "extra-egg", Name: "Extra Boiled Egg", NameMM: "ကြက်ဥပြုတ် ပိုထည့်", Price: 300},
				},
			},
		},
	},
	{
		ID:            "r2",
		Name:          "Shan Hills Noodle House",
		NameMM:        "ရှမ်းတောင်တန်း ခေါက်ဆွဲဆိုင်",
		Description:   "Hand-made Shan noodles and hearty highland dishes",
		DescriptionMM: "လက်လုပ် ရှမ်းခေါက်ဆွဲနှင့် တောင်ပေါ် အစားအစာများ",
		Image:         "https://images.unsplash.com/photo-1552611052-33e04de081de?w=400&h=300&fit=crop",
		CoverImage:    "https://images.unsplash.com/photo-1547592180-85f173990554?w=800&h=400&fit=crop",
		Rating:        4.7,
		ReviewCount:   189,
		DeliveryTime:  "30-40 min",
		DeliveryFee:   2000,
		Category:      "shan",
		Categories:    []string{"shan", "myanmar"},
		IsOpen:        true,
		Menu: []entity.MenuItem{
			{
				ID:            "m2-1",
				Name:          "Shan Noodles",
				NameMM:        "ရှမ်းခေါက်ဆွဲ",
				Description:   "Rice noodles with marinated chicken and pickled greens",
				DescriptionMM: "ကြက်သားနှင့် မုန်ညင်းချဉ် ပါသော ရှမ်းခေါက်ဆွဲ",
				Price:         2800,
				Image:         "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400&h=300&fit=crop",
				Category:      "shan",
				IsPopular:     true,
				Toppings: []entity.ToppingOption{
					{ID: "extra-pork", Name: "Extra Pork", NameMM: "ဝက်သား ပိုထည့်", Price: 700},
					{ID: "extra-broth", Name: "Soup On The Side", NameMM: "ဟင်းရည် သပ်သပ်", Price: 0},
				},
			},
			{
				ID:            "m2-2",
				Name:          "Shan Tofu Salad",
				NameMM:        "တိုဟူးသုပ်",
				Description:   "Chickpea tofu tossed with chili oil and garlic",
				DescriptionMM: "ငရုတ်ဆီနှင့် ကြက်သွန်ဖြူ ရောသုပ်ထားသော တိုဟူးသုပ်",
				Price:         2200,
				Image:         "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
				Category:      "shan",
				IsSpicy:       true,
			},
		},
	},
	{
		ID:            "r3",
		Name:          "Dragon Wok",
		NameMM:        "နဂါး ဝမ်းခတ်",
		Description:   "Wok-fired Chinese favorites, made to order",
		DescriptionMM: "မှာလိုက်တိုင်း ချက်ပေးသော တရုတ် အစားအစာများ",
		Image:         "https://images.unsplash.com/photo-1525755662778-989d0524087e?w=400&h=300&fit=crop",
		CoverImage:    "https://images.unsplash.com/photo-1563245372-f21724e3856d?w=800&h=400&fit=crop",
		Rating:        4.5,
		ReviewCount:   156,
		DeliveryTime:  "20-30 min",
		DeliveryFee:   1800,
		Category:      "chinese",
		Categories:    []string{"chinese"},
		IsOpen:        true,
		Menu: []entity.MenuItem{
			{
				ID:            "m3-1",
				Name:          "Fried Rice",
				NameMM:        "ထမင်းကြော်",
				Description:   "Egg fried rice with spring onion",
				DescriptionMM: "ကြက်ဥနှင့် ကြက်သွန်မြိတ် ထမင်းကြော်",
				Price:         3200,
				Image:         "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=400&h=300&fit=crop",
				Category:      "chinese",
				IsPopular:     true,
				Toppings: []entity.ToppingOption{
					{ID: "extra-prawn", Name: "Extra Prawns", NameMM: "ပုစွန် ပိုထည့်", Price: 1000},
				},
			},
			{
				ID:            "m3-2",
				Name:          "Chili Chicken",
				NameMM:        "ငရုတ်သီး ကြက်သားကြော်",
				Description:   "Crispy chicken tossed in dried chili and garlic",
				DescriptionMM: "ငရုတ်သီးခြောက်နှင့် ကြက်သွန်ဖြူ ကြက်သားကြော်",
				Price:         4500,
				Image:         "https://images.unsplash.com/photo-1562967914-608f82629710?w=400&h=300&fit=crop",
				Category:      "chinese",
				IsSpicy:       true,
			},
		},
	},
	{
		ID:            "r4",
		Name:          "Moonlight Tea House",
		NameMM:        "လမင်း လက်ဖက်ရည်ဆိုင်",
		Description:   "Sweet milk tea, bubble tea and little desserts",
		DescriptionMM: "နို့လက်ဖက်ရည်၊ ပုလဲလက်ဖက်ရည်နှင့် အချိုပွဲလေးများ",
		Image:         "https://images.unsplash.com/photo-1558857563-b371033873b8?w=400&h=300&fit=crop",
		CoverImage:    "https://images.unsplash.com/photo-1561047029-3000c68339ca?w=800&h=400&fit=crop",
		Rating:        4.6,
		ReviewCount:   98,
		DeliveryTime:  "15-25 min",
		DeliveryFee:   1000,
		Category:      "drinks",
		Categories:    []string{"drinks", "dessert"},
		IsOpen:        true,
		Menu: []entity.MenuItem{
			{
				ID:            "m4-1",
				Name:          "Myanmar Milk Tea",
				NameMM:        "နို့လက်ဖက်ရည်",
				Description:   "Strong black tea with sweetened condensed milk",
				DescriptionMM: "နို့ဆီနှင့် ဖျော်ထားသော လက်ဖက်ရည်",
				Price:         1200,
				Image:         "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?w=400&h=300&fit=crop",
				Category:      "drinks",
				IsPopular:     true,
				Toppings: []entity.ToppingOption{
					{ID: "extra-pearl", Name: "Tapioca Pearls", NameMM: "ပုလဲစေ့", Price: 500},
					{ID: "less-sugar", Name: "Less Sugar", NameMM: "အချို လျှော့", Price: 0},
				},
			},
			{
				ID:            "m4-2",
				Name:          "Shwe Yin Aye",
				NameMM:        "ရွှေရင်အေး",
				Description:   "Coconut milk dessert with sago, bread and jelly",
				DescriptionMM: "အုန်းနို့၊ သာကူစေ့နှင့် ကျောက်ကျော ပါသော အအေး",
				Price:         1500,
				Image:         "https://images.unsplash.com/photo-1488900128323-21503983a07e?w=400&h=300&fit=crop",
				Category:      "dessert",
			},
		},
	},
}
