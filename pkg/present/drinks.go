package present

func DefaultDrinks() map[string]Drink {
	return map[string]Drink{
		"espresso": {
			Label:       "إسبريسو",
			Description: "قهوة مركزة وقوية بدون حليب",
		},
		"Americano": {
			Label:       "أمريكانو",
			Description: "قهوة خفيفة مع ماء ساخن بدون حليب",
		},
		"latte": {
			Label:       "لاتيه",
			Description: "قهوة خفيفة مع حليب فومي ناعم",
		},
		"cappuccino": {
			Label:       "كابتشينو",
			Description: "قهوة خفيفة مع حليب ورغوة متوازنة",
		},
		"Flat white": {
			Label:       "فلات وايت",
			Description: "قهوة خفيفة مع حليب حريري ناعم",
		},
		"Cortado": {
			Label:       "كورتادو",
			Description: "إسبرسو ممزوج بكمية مساوية تقريباً من الحليب الساخن المبخر لتقليل حموضة القهوة أو مرارتها",
		},
		"Spanish latte": {
			Label:       "سبانش لاتيه",
			Description: "مشروب مكون من الإسبريسو والحليب والثلج مضاف إليه محلى",
		},
		"Mikato": {
			Label:       "ميكاتو",
			Description: "اسبريسو مع رغوة الحليب فقط لتقليل حموضة القهوة أو مرارتها",
		},
		"Cold Brew": {
			Label:       "كولد برو بارد",
			Description: "قهوة باردة منقوعة طوال الليل بدون حليب",
			FixedLabel:  true,
		},
		"v60 Yemeni coffee": {
			Label:       "قهوة v60 يمني",
			Description: "قهوة فاخرة ذات مذاق معتدل ومتوازن تحوي إيحاءات طبيعية من الياسمين والزبيب والفراولة",
		},
		"v60 Ethiopian coffee": {
			Label:       "قهوة v60 إثيوبي",
			Description: "قهوة فاخرة ذات مذاق معتدل ومتوازن تحوي إيحاءات طبيعية من الفراولة والتوت البري والشوكولاتة",
		},
		"v60 Colombian coffee": {
			Label:       "قهوة v60 كولومبي",
			Description: "قهوة ذات مذاق معتدل وحدة متوسطة تحوي إيحاءات طبيعية من التوت الأزرق والفراولة",
		},
		"coffee day": {
			Label:       "قهوة اليوم",
			Description: "قهوة سوداء فاخرة ذات سعر مميز مرشحة تجهز مسبقاً ويتم تقديمها بأنواع قهوة مختلفة يومياً حتى نفاذ الكمية",
		},
		"Vanilla latte": {
			Label:       "فانيلا لاتيه",
			Description: "لاتيه ناعم مع شراب الفانيلا",
		},
		"Caramel macchiato": {
			Label:       "كراميل ماكياتو",
			Description: "إسبريسو مع حليب وصوص الكراميل",
		},
		"Hazelnut mocha": {
			Label:       "موكا بالبندق",
			Description: "إسبريسو مع الشوكولاتة والحليب ونكهة البندق",
		},
		"hot chocolate": {
			Label:       "مشروب شوكولاتة",
			Description: "حليب كريمي مع شوكولاتة بدون قهوة",
		},
	}
}
