package model

import (
	"strings"

	"gorm.io/datatypes"
)

// World type of a country.
const (
	WorldTypeOld = "old_world"
	WorldTypeNew = "new_world"
)

type Country struct {
	CountryID     string  `gorm:"primaryKey;size:64" json:"country_id"`
	NamePT        string  `gorm:"column:name_pt;not null" json:"name_pt"`
	NameEN        string  `gorm:"column:name_en;not null;index" json:"name_en"`
	WorldType     string  `gorm:"size:16;not null" json:"world_type"`
	FlagEmoji     string  `json:"flag_emoji"`
	DescriptionPT string  `gorm:"column:description_pt" json:"description_pt"`
	DescriptionEN string  `gorm:"column:description_en" json:"description_en"`
	ImageURL      *string `gorm:"column:image_url" json:"image_url"`
}

func (Country) TableName() string {
	return "countries"
}

// Region の terroir / climate は構造化された記述子 (土壌・標高・海洋性など) をそのまま JSON で保持します。
type Region struct {
	RegionID      string                      `gorm:"primaryKey;size:64" json:"region_id"`
	CountryID     string                      `gorm:"size:64;not null;index" json:"country_id"`
	Name          string                      `gorm:"not null;index" json:"name"`
	NamePT        string                      `gorm:"column:name_pt" json:"name_pt"`
	NameEN        string                      `gorm:"column:name_en" json:"name_en"`
	DescriptionPT string                      `gorm:"column:description_pt" json:"description_pt"`
	DescriptionEN string                      `gorm:"column:description_en" json:"description_en"`
	Terroir       datatypes.JSON              `json:"terroir"`
	Climate       datatypes.JSON              `json:"climate"`
	Appellations  datatypes.JSONSlice[string] `json:"appellations"`
	MainGrapes    datatypes.JSONSlice[string] `json:"main_grapes"`
	KeyGrapes     datatypes.JSONSlice[string] `json:"key_grapes"`
	WineStyles    datatypes.JSONSlice[string] `json:"wine_styles"`
	WineStylesPT  datatypes.JSONSlice[string] `gorm:"column:wine_styles_pt" json:"wine_styles_pt"`
	WineStylesEN  datatypes.JSONSlice[string] `gorm:"column:wine_styles_en" json:"wine_styles_en"`
}

func (Region) TableName() string {
	return "regions"
}

// HasGrape は main_grapes / key_grapes のどちらかにブドウ名が含まれているかを判定します。
func (r *Region) HasGrape(grape string) bool {
	return containsFold(r.MainGrapes, grape) || containsFold(r.KeyGrapes, grape)
}

// Grape type.
const (
	GrapeTypeRed   = "red"
	GrapeTypeWhite = "white"
)

type Grape struct {
	GrapeID           string                      `gorm:"primaryKey;size:64" json:"grape_id"`
	Name              string                      `gorm:"not null;index" json:"name"`
	GrapeType         string                      `gorm:"size:16;not null;index" json:"grape_type"`
	OriginCountry     string                      `gorm:"size:64" json:"origin_country"`
	DescriptionPT     string                      `gorm:"column:description_pt" json:"description_pt"`
	DescriptionEN     string                      `gorm:"column:description_en" json:"description_en"`
	AromaNotesPT      datatypes.JSONSlice[string] `gorm:"column:aroma_notes_pt" json:"aroma_notes_pt"`
	AromaNotesEN      datatypes.JSONSlice[string] `gorm:"column:aroma_notes_en" json:"aroma_notes_en"`
	FlavorNotesPT     datatypes.JSONSlice[string] `gorm:"column:flavor_notes_pt" json:"flavor_notes_pt"`
	FlavorNotesEN     datatypes.JSONSlice[string] `gorm:"column:flavor_notes_en" json:"flavor_notes_en"`
	Structure         datatypes.JSON              `json:"structure"`
	AgingPotential    string                      `json:"aging_potential"`
	BestRegions       datatypes.JSONSlice[string] `json:"best_regions"`
	ClimatePreference string                      `json:"climate_preference"`
	ImageURL          *string                     `gorm:"column:image_url" json:"image_url"`
}

func (Grape) TableName() string {
	return "grapes"
}

// HasAroma は pt/en どちらかのアロマリストに値が含まれているかを判定します。
// 値全体の一致のみで、大文字小文字は区別しません (タグID "cherry" と "Cherry")。
func (g *Grape) HasAroma(aroma string) bool {
	return containsFold(g.AromaNotesPT, aroma) || containsFold(g.AromaNotesEN, aroma)
}

// HasBestRegion は best_regions に地域名が含まれているかを判定します。
func (g *Grape) HasBestRegion(region string) bool {
	return containsFold(g.BestRegions, region)
}

func containsFold(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// GrapeResponse は保存された pt/en のリストに加えて、言語非依存の aromatic_notes / flavor_notes を返します。
type GrapeResponse struct {
	*Grape
	AromaticNotes []string `json:"aromatic_notes"`
	FlavorNotes   []string `json:"flavor_notes"`
}

// NewGrapeResponse は pt を優先し、空なら en のリストを使います。
func NewGrapeResponse(g *Grape) GrapeResponse {
	return GrapeResponse{
		Grape:         g,
		AromaticNotes: preferNotes(g.AromaNotesPT, g.AromaNotesEN),
		FlavorNotes:   preferNotes(g.FlavorNotesPT, g.FlavorNotesEN),
	}
}

func preferNotes(pt, en []string) []string {
	if len(pt) > 0 {
		return pt
	}
	if len(en) > 0 {
		return en
	}
	return []string{}
}

// Aroma categories.
const (
	AromaCategoryFruit  = "fruit"
	AromaCategoryFloral = "floral"
	AromaCategorySpice  = "spice"
	AromaCategoryOak    = "oak"
	AromaCategoryEarth  = "earth"
)

type AromaTag struct {
	TagID    string `gorm:"primaryKey;size:64" json:"tag_id"`
	NamePT   string `gorm:"column:name_pt;not null" json:"name_pt"`
	NameEN   string `gorm:"column:name_en;not null" json:"name_en"`
	Category string `gorm:"size:32;not null;index" json:"category"`
	Emoji    string `json:"emoji"`
}

func (AromaTag) TableName() string {
	return "aroma_tags"
}

// CountryFilter は国一覧の絞り込み条件です。
type CountryFilter struct {
	WorldType string
}

// RegionFilter は地域一覧の絞り込み条件です。Grape は主要品種のリストと名前で照合します。
type RegionFilter struct {
	CountryID string
	Grape     string
}

// GrapeFilter はブドウ一覧の絞り込み条件です。
// GrapeTypes はいずれかに一致、Aromas と Regions はすべてを含むものに絞り込みます。
type GrapeFilter struct {
	GrapeTypes []string
	Aromas     []string
	Regions    []string
}

// AromaFilter はアロマタグ一覧の絞り込み条件です。
type AromaFilter struct {
	Category string
}

// Search categories.
const (
	SearchCategoryGrapes    = "grapes"
	SearchCategoryRegions   = "regions"
	SearchCategoryCountries = "countries"
)

type SearchResult struct {
	Grapes    []GrapeResponse `json:"grapes"`
	Regions   []Region        `json:"regions"`
	Countries []Country       `json:"countries"`
}

// APIInfo は /api/ のレスポンスです。
type APIInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
