package present

import (
	"fmt"
	"path"
	"strings"
)

const (
	DefaultImagesDir = "images"

	coldText = "بارد"
	hotText  = "ساخن"

	fallbackLabel       = "مشروب"
	fallbackDescription = "مشروب رائع يناسب ذوقك"
)

type Presentation struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	ImageRef    string `json:"image"`
}

// Resolver turns a catalog key into what the user sees. tempPreference is the raw quiz answer,
// not the encoded temperature code.
type Resolver interface {
	Resolve(name, tempPreference string) Presentation
}

// ResolverFactory builds a resolver for a questionnaire whose yes token means cold.
type ResolverFactory func(coldToken string) Resolver

type Drink struct {
	Label       string
	Description string
	// FixedLabel is shown as is, without the temperature suffix.
	FixedLabel bool
}

type TableResolver struct {
	Drinks    map[string]Drink
	ColdToken string
	ImagesDir string
}

func NewTableResolver(coldToken string) *TableResolver {
	return &TableResolver{
		Drinks:    DefaultDrinks(),
		ColdToken: coldToken,
		ImagesDir: DefaultImagesDir,
	}
}

func NewTableResolverFactory() ResolverFactory {
	return func(coldToken string) Resolver {
		return NewTableResolver(coldToken)
	}
}

func (r *TableResolver) Resolve(name, tempPreference string) Presentation {
	isCold := tempPreference == r.ColdToken
	tempText := hotText
	if isCold {
		tempText = coldText
	}

	res := Presentation{
		Label:       fmt.Sprintf("%s %s", fallbackLabel, tempText),
		Description: fallbackDescription,
		ImageRef:    r.imageRef(name, isCold),
	}

	drink, ok := r.Drinks[name]
	if !ok {
		return res
	}

	if drink.FixedLabel {
		res.Label = drink.Label
	} else if drink.Label != "" {
		res.Label = fmt.Sprintf("%s %s", drink.Label, tempText)
	}

	if drink.Description != "" {
		res.Description = drink.Description
	}

	return res
}

// imageRef picks the folder by the user's temperature answer, not by the drink's own temperature.
func (r *TableResolver) imageRef(name string, isCold bool) string {
	folder := "hot"
	if isCold {
		folder = "cold"
	}

	imageName := strings.Join(strings.Fields(name), " ")

	return path.Join(r.ImagesDir, folder, imageName+".png")
}
