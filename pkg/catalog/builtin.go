package catalog

import "sort"

const (
	ClassicName  = "classic"
	FlavoredName = "flavored"
	MinimalName  = "minimal"
)

var classicFeatures = []Feature{
	FeatureSweetness,
	FeatureMilkAmount,
	FeatureCoffeeStrength,
	FeatureSpecialty,
	FeatureTemperature,
}

var flavoredFeatures = []Feature{
	FeatureSweetness,
	FeatureMilkAmount,
	FeatureCoffeeStrength,
	FeatureFlavors,
	FeatureSpecialty,
	FeatureTemperature,
}

var minimalFeatures = []Feature{
	FeatureSweetness,
	FeatureMilkAmount,
	FeatureCoffeeStrength,
	FeatureTemperature,
}

func item(name string, sweetness, milk, strength, specialty, temperature int) Item {
	return Item{
		Name: name,
		Vector: Vector{
			Sweetness:      sweetness,
			MilkAmount:     milk,
			CoffeeStrength: strength,
			Specialty:      specialty,
			Temperature:    temperature,
		},
	}
}

func flavoredItem(name string, sweetness, milk, strength, flavors, specialty, temperature int) Item {
	i := item(name, sweetness, milk, strength, specialty, temperature)
	i.Flavors = flavors

	return i
}

// Classic is the menu the quiz started with: cold drinks first, then hot ones.
func Classic() *Catalog {
	return New(ClassicName, classicFeatures, []Item{
		item("v60 Yemeni coffee", 0, 0, 1, SpecialtyYemeni, TemperatureCold),
		item("v60 Ethiopian coffee", 0, 0, 1, SpecialtyEthiopian, TemperatureCold),
		item("v60 Colombian coffee", 0, 0, 1, SpecialtyColombian, TemperatureCold),
		item("Spanish latte", 1, 1, 1, SpecialtyRegular, TemperatureCold),
		item("latte", 0, 1, 0, SpecialtyRegular, TemperatureCold),
		item("Cold Brew", 0, 0, 1, SpecialtyRegular, TemperatureCold),
		item("coffee day", 0, 0, 0, SpecialtyRegular, TemperatureCold),
		item("Americano", 0, 0, 0, SpecialtyRegular, TemperatureCold),

		item("v60 Yemeni coffee", 0, 0, 1, SpecialtyYemeni, TemperatureHot),
		item("v60 Ethiopian coffee", 0, 0, 1, SpecialtyEthiopian, TemperatureHot),
		item("v60 Colombian coffee", 0, 0, 1, SpecialtyColombian, TemperatureHot),
		item("Spanish latte", 1, 1, 1, SpecialtyRegular, TemperatureHot),
		item("Mikato", 0, 1, 1, SpecialtyRegular, TemperatureHot),
		item("latte", 0, 1, 0, SpecialtyRegular, TemperatureHot),
		item("Flat white", 0, 1, 0, SpecialtyRegular, TemperatureHot),
		item("espresso", 0, 0, 1, SpecialtyRegular, TemperatureHot),
		item("Cortado", 0, 1, 0, SpecialtyRegular, TemperatureHot),
		item("coffee day", 0, 0, 0, SpecialtyRegular, TemperatureHot),
		item("cappuccino", 0, 1, 0, SpecialtyRegular, TemperatureHot),
		item("Americano", 0, 0, 0, SpecialtyRegular, TemperatureHot),
	})
}

// Flavored extends the menu with syrup based drinks and the flavors feature.
func Flavored() *Catalog {
	return New(FlavoredName, flavoredFeatures, []Item{
		flavoredItem("v60 Yemeni coffee", 0, 0, 1, 0, SpecialtyYemeni, TemperatureCold),
		flavoredItem("v60 Ethiopian coffee", 0, 0, 1, 0, SpecialtyEthiopian, TemperatureCold),
		flavoredItem("v60 Colombian coffee", 0, 0, 1, 0, SpecialtyColombian, TemperatureCold),
		flavoredItem("Spanish latte", 1, 1, 1, 0, SpecialtyRegular, TemperatureCold),
		flavoredItem("latte", 0, 1, 0, 0, SpecialtyRegular, TemperatureCold),
		flavoredItem("Cold Brew", 0, 0, 1, 0, SpecialtyRegular, TemperatureCold),
		flavoredItem("Americano", 0, 0, 0, 0, SpecialtyRegular, TemperatureCold),
		flavoredItem("Vanilla latte", 1, 1, 0, 1, SpecialtyRegular, TemperatureCold),
		flavoredItem("Caramel macchiato", 1, 1, 1, 1, SpecialtyRegular, TemperatureCold),

		flavoredItem("v60 Yemeni coffee", 0, 0, 1, 0, SpecialtyYemeni, TemperatureHot),
		flavoredItem("v60 Ethiopian coffee", 0, 0, 1, 0, SpecialtyEthiopian, TemperatureHot),
		flavoredItem("v60 Colombian coffee", 0, 0, 1, 0, SpecialtyColombian, TemperatureHot),
		flavoredItem("Spanish latte", 1, 1, 1, 0, SpecialtyRegular, TemperatureHot),
		flavoredItem("Mikato", 0, 1, 1, 0, SpecialtyRegular, TemperatureHot),
		flavoredItem("latte", 0, 1, 0, 0, SpecialtyRegular, TemperatureHot),
		flavoredItem("Flat white", 0, 1, 0, 0, SpecialtyRegular, TemperatureHot),
		flavoredItem("espresso", 0, 0, 1, 0, SpecialtyRegular, TemperatureHot),
		flavoredItem("cappuccino", 0, 1, 0, 0, SpecialtyRegular, TemperatureHot),
		flavoredItem("Americano", 0, 0, 0, 0, SpecialtyRegular, TemperatureHot),
		flavoredItem("Hazelnut mocha", 1, 1, 0, 1, SpecialtyRegular, TemperatureHot),
	})
}

// Minimal is the degraded two drink menu that only asks whether coffee is wanted at all.
func Minimal() *Catalog {
	return New(MinimalName, minimalFeatures, []Item{
		item("latte", 0, 1, 1, SpecialtyRegular, TemperatureHot),
		item("hot chocolate", 1, 1, 0, SpecialtyRegular, TemperatureHot),
	})
}

var builtins = map[string]func() *Catalog{
	ClassicName:  Classic,
	FlavoredName: Flavored,
	MinimalName:  Minimal,
}

func Builtin(name string) (*Catalog, bool) {
	build, ok := builtins[name]
	if !ok {
		return nil, false
	}

	return build(), true
}

func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
