package models

import "strings"

// ProductTypeOptions lists the selectable product types per category.
var ProductTypeOptions = map[Category][]string{
	CategoryInteriorDoor: {
		"me elektomotor",
		"me shirk-litar",
		"Antrazit",
		"Golden Oak",
	},
	CategoryEntranceDoor: {
		"Profili",
		"Alumin",
		"Alumin Termo",
		"GEALAN S9000 German profiles",
	},
	CategoryGarageDoor:      {"Profili", "Alumin-Panel"},
	CategoryInteriorDoorMDF: {"Profili", "MDF 40mm+6mm"},
}

// AttributeOptions holds the dropdown option catalog per multi-select
// attribute, keyed by the attribute's JSON field name.
var AttributeOptions = map[string][]string{
	"hapjaRoletneteve": {
		"Bardh",
		"Antrazit-Bardh",
		"Antrazit",
		"Golden Oak",
		"Spas doelloss",
	},
	"ngjyraRoletneteve": {
		"Bardh",
		"Antrazit-Bardh",
		"Antrazit",
		"Golden Oak",
		"AGB",
		"Cilinder",
		"Çeles-Magnet",
		"Cilinder: Magnet",
	},
	"fletezateRoletneteve": {
		"Bardh",
		"Antrazit-Bardh",
		"Antrazit",
		"Golden Oak",
		"GEALAN S9000 German profiles",
	},
	"profili": {"Alumin", "Alumin-Panel", "MDF"},
	"ngjyraProfilit": {
		"Bardh",
		"Antrazit-Bardh",
		"Antrazit",
		"Golden Oak",
		"Sigjenja",
		"PSK SISTEM",
		"HS SISTEM",
		"Spas doelloss",
	},
	"mekanizmat": {
		"Sigjenja",
		"PSK SISTEM",
		"HS SISTEM",
		"Hoppe",
		"PSK Panel",
		"Sendvic Panel 40 mm",
		"AGB",
	},
	"dorzat": {
		"Hoppe",
		"Pvc GEALAN S9000 German profiles",
		"Pvc Panel",
		"Pvc Panel 2gjukrues",
		"Pvc Panel zbukurues i trafshët",
		"2 gjukrues",
		"2 cope",
		"Cilinder",
		"Çeles-Magnet",
	},
	"mbushja":       {"Pvc Panel", "Sendvic Panel 40 mm", "MDF"},
	"llavjetBraves": {"Lloji i braves", "Mbyllja e braves", "2 cope"},
	"mekanizmatBraves": {
		"Mekanizmat i braves",
		"Pvc Panel zbukurues i trafshët",
		"Sendvic Panel 40 mm",
		"Cilinder: Magnet",
	},
	"qelsat": {"Qelsat", "3 cope", "2 cope", "3D"},
	"bagjlamat": {
		"Marc",
		"Stubina",
		"Me 3 mbyllje",
		"Të koduar 5 Cope",
		"Telekomanda",
		"2 cope",
		"Të bllokuara",
		"Të doellossa 3D",
	},
}

// selectionSeparator joins chosen options into one attribute value.
// The join has no escaping: a custom-entered option containing ", "
// will split incorrectly on re-parse. Known limitation, kept for
// compatibility with stored offers.
const selectionSeparator = ", "

// JoinSelections serializes chosen options into a single attribute
// value.
func JoinSelections(items []string) string {
	return strings.Join(items, selectionSeparator)
}

// SplitSelections parses an attribute value back into its chosen
// options, dropping empty entries.
func SplitSelections(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, selectionSeparator) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
