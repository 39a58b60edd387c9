package models

// ProductTemplate is a predefined door configuration the editing
// surface can add with one click.
type ProductTemplate struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Product Product `json:"product"`
}

// ProductTemplates returns the predefined configurations. Each call
// returns fresh copies so callers can assign ids and mutate freely.
func ProductTemplates() []ProductTemplate {
	return []ProductTemplate{
		{
			Name:  "Derë e mbrendshme standard",
			Price: 350.00,
			Product: Product{
				Category:             CategoryInteriorDoor,
				ProductType:          "me elektomotor",
				HapjaRoletneteve:     "Bardh",
				NgjyraRoletneteve:    "Antrazit-Bardh",
				FletezateRoletneteve: "Antrazit",
				Profili:              "Alumin",
				NgjyraProfilit:       "Sigjenja",
				Mekanizmat:           "Hoppe",
				Dorzat:               "Pvc GEALAN S9000 German profiles",
				Mbushja:              "Pvc Panel",
				LlavjetBraves:        "Lloji i braves",
				MekanizmatBraves:     "Mekanizmat i braves",
				Qelsat:               "3 cope",
				Bagjlamat:            "Marc",
				Quantity:             1,
				Qmimi:                350.00,
				TotalPrice:           350.00,
			},
		},
		{
			Name:  "Derë e Hyrjes",
			Price: 650.00,
			Product: Product{
				Category:             CategoryEntranceDoor,
				ProductType:          "Profili",
				HapjaRoletneteve:     "Antrazit-Bardh",
				NgjyraRoletneteve:    "Antrazit",
				FletezateRoletneteve: "Golden Oak",
				Profili:              "Alumin",
				NgjyraProfilit:       "Antrazit-Bardh",
				Mekanizmat:           "PSK Panel",
				Dorzat:               "Pvc Panel",
				Mbushja:              "Pvc Panel",
				LlavjetBraves:        "2 cope",
				MekanizmatBraves:     "Pvc Panel zbukurues i trafshët",
				Qelsat:               "3 cope",
				Bagjlamat:            "Të koduar 5 Cope",
				Quantity:             1,
				Qmimi:                650.00,
				TotalPrice:           650.00,
			},
		},
		{
			Name:  "Derë e Garazhës",
			Price: 850.00,
			Product: Product{
				Category:             CategoryGarageDoor,
				ProductType:          "Alumin-Panel",
				HapjaRoletneteve:     "Bardh",
				NgjyraRoletneteve:    "Bardh",
				FletezateRoletneteve: "Bardh",
				Profili:              "Alumin-Panel",
				NgjyraProfilit:       "Bardh",
				Mekanizmat:           "Sendvic Panel 40 mm",
				Dorzat:               "2 cope",
				Mbushja:              "Sendvic Panel 40 mm",
				LlavjetBraves:        "2 cope",
				MekanizmatBraves:     "Sendvic Panel 40 mm",
				Qelsat:               "2 cope",
				Bagjlamat:            "Telekomanda",
				Quantity:             1,
				Qmimi:                850.00,
				TotalPrice:           850.00,
			},
		},
		{
			Name:  "Derë e mbrendshme MDF",
			Price: 280.00,
			Product: Product{
				Category:             CategoryInteriorDoorMDF,
				ProductType:          "MDF 40mm+6mm",
				HapjaRoletneteve:     "Spas doelloss",
				NgjyraRoletneteve:    "AGB",
				FletezateRoletneteve: "GEALAN S9000 German profiles",
				Profili:              "MDF",
				NgjyraProfilit:       "Spas doelloss",
				Mekanizmat:           "AGB",
				Dorzat:               "Cilinder",
				Mbushja:              "MDF",
				LlavjetBraves:        "Mbyllja e braves",
				MekanizmatBraves:     "Cilinder: Magnet",
				Qelsat:               "3D",
				Bagjlamat:            "Të bllokuara",
				Quantity:             1,
				Qmimi:                280.00,
				TotalPrice:           280.00,
			},
		},
	}
}
