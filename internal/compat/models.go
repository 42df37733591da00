// Package compat resolve a compatibilidade entre acessórios do catálogo e o
// modelo do equipamento pai. A política de casamento é deliberadamente
// frouxa (substring, não igualdade): entradas de texto livre no catálogo
// ainda precisam casar com famílias de modelos.
package compat

import "strings"

// EquipmentModels lista os modelos pré-definidos oferecidos no formulário
// de equipamento, agrupados por fabricante.
var EquipmentModels = map[string][]string{
	"DJI": {
		// Série Mavic
		"Mavic 3",
		"Mavic 3 Pro",
		"Mavic 3 Classic",
		"Mavic 3 Cine",
		"Mavic Air 2S",
		"Mavic Air 2",
		"Mavic Air",
		"Mavic Mini 3",
		"Mavic Mini 3 Pro",
		"Mavic Mini 2",
		"Mavic Mini",
		"Mavic 2 Pro",
		"Mavic 2 Zoom",
		"Mavic 2 Enterprise",
		"Mavic Pro",
		"Mavic Pro Platinum",

		// Série Mini
		"DJI Mini 4 Pro",
		"DJI Mini 3",
		"DJI Mini 3 Pro",
		"DJI Mini 2",
		"DJI Mini SE",

		// Série Air
		"DJI Air 3",
		"DJI Air 2S",
		"DJI Air 2",

		// Série Matrice
		"Matrice 350 RTK",
		"Matrice 300 RTK",
		"Matrice 300",
		"Matrice 30",
		"Matrice 30T",
		"Matrice 210 V2",
		"Matrice 210 RTK V2",
		"Matrice 210",
		"Matrice 210 RTK",
		"Matrice 200",
		"Matrice 600 Pro",
		"Matrice 600",
		"Matrice 100",

		// Série Phantom
		"Phantom 4 RTK",
		"Phantom 4 Pro V2.0",
		"Phantom 4 Pro",
		"Phantom 4 Advanced",
		"Phantom 4",
		"Phantom 3 Professional",
		"Phantom 3 Advanced",
		"Phantom 3 Standard",
		"Phantom 3 4K",

		// Série Inspire
		"Inspire 3",
		"Inspire 2",
		"Inspire 1 Pro",
		"Inspire 1",

		// Série FPV
		"DJI FPV",
		"DJI Avata 2",
		"DJI Avata",

		// Série agrícola
		"Agras T50",
		"Agras T40",
		"Agras T30",
		"Agras T25",
		"Agras T20",
		"Agras T16",
		"Agras MG-1P",

		// Outros
		"Spark",
		"Ryze Tello",
		"Robomaster TT",
	},

	"Autel Robotics": {
		// Série EVO II
		"EVO II Pro",
		"EVO II Dual",
		"EVO II Pro 6K",
		"EVO II Pro Rugged Bundle",
		"EVO II RTK",

		// Série EVO Max
		"EVO Max 4T",
		"EVO Max 4N",

		// Série EVO Lite
		"EVO Lite+",
		"EVO Lite",

		// Série EVO Nano
		"EVO Nano+",
		"EVO Nano",

		// Série Dragonfish
		"Dragonfish Pro",
		"Dragonfish Standard",
		"Dragonfish Lite",

		// Série Alpha
		"Alpha",

		// Série Titan
		"Titan",
	},

	"Dahua": {
		// Série X
		"Dahua X820",
		"Dahua X1200",
		"Dahua X1500",
		"Dahua X2000",

		// Série Sky Eye
		"Sky Eye X8-2000",
		"Sky Eye X10-3000",
		"Sky Eye X12-4000",
		"Sky Eye X15-5000",

		// Série Professional
		"Dahua Pro X1",
		"Dahua Pro X2",
		"Dahua Pro X3",
	},

	"Parrot": {
		"ANAFI",
		"ANAFI Thermal",
		"ANAFI USA",
		"ANAFI Ai",
		"Bebop 2",
		"Disco FPV",
		"Mambo",
		"Swing",
	},

	"Skydio": {
		"Skydio 2",
		"Skydio 2+",
		"Skydio X2",
		"Skydio X2D",
		"Skydio X2E",
	},

	"Yuneec": {
		"Typhoon H520",
		"Typhoon H Plus",
		"Typhoon H3",
		"Mantis G",
		"Mantis Q",
		"Breeze 4K",
		"E90",
		"E10T",
	},
}

// modelCompatibilityMap mapeia modelos específicos para os tokens de
// família usados nas listas de compatibilidade do catálogo.
var modelCompatibilityMap = map[string][]string{
	// DJI série Matrice 200
	"Matrice 210":        {"Matrice 200"},
	"Matrice 210 RTK":    {"Matrice 200"},
	"Matrice 210 V2":     {"Matrice 200"},
	"Matrice 210 RTK V2": {"Matrice 200"},
	"Matrice 200":        {"Matrice 200"},

	// DJI série Matrice 300
	"Matrice 350 RTK": {"Matrice 300"},
	"Matrice 300":     {"Matrice 300"},
	"Matrice 300 RTK": {"Matrice 300"},
	"Matrice 30":      {"Matrice 300"},
	"Matrice 30T":     {"Matrice 300"},

	// DJI série Mavic 3
	"Mavic 3":          {"Mavic 3"},
	"Mavic 3 Pro":      {"Mavic 3"},
	"Mavic 3 Classic":  {"Mavic 3"},
	"Mavic 3 Cine":     {"Mavic 3"},
	"Mavic Mini 3":     {"Mavic 3"},
	"Mavic Mini 3 Pro": {"Mavic 3"},

	// DJI série Mavic 2
	"Mavic 2 Pro":        {"Mavic 2"},
	"Mavic 2 Zoom":       {"Mavic 2"},
	"Mavic 2 Enterprise": {"Mavic 2"},

	// DJI série Air
	"DJI Air 3":    {"Air 3"},
	"DJI Air 2S":   {"Air 2S"},
	"Mavic Air 2S": {"Air 2S"},
	"DJI Air 2":    {"Air 2"},
	"Mavic Air 2":  {"Air 2"},
	"Mavic Air":    {"Air"},

	// DJI série Mini
	"DJI Mini 4 Pro": {"Mini 4"},
	"DJI Mini 3":     {"Mini 3"},
	"DJI Mini 3 Pro": {"Mini 3"},
	"DJI Mini 2":     {"Mini 2"},
	"Mavic Mini 2":   {"Mini 2"},
	"DJI Mini SE":    {"Mini"},
	"Mavic Mini":     {"Mini"},

	// DJI série Phantom
	"Phantom 4 RTK":          {"Phantom 4"},
	"Phantom 4 Pro V2.0":     {"Phantom 4"},
	"Phantom 4 Pro":          {"Phantom 4"},
	"Phantom 4 Advanced":     {"Phantom 4"},
	"Phantom 4":              {"Phantom 4"},
	"Phantom 3 Professional": {"Phantom 3"},
	"Phantom 3 Advanced":     {"Phantom 3"},
	"Phantom 3 Standard":     {"Phantom 3"},
	"Phantom 3 4K":           {"Phantom 3"},

	// DJI série Inspire
	"Inspire 3":     {"Inspire"},
	"Inspire 2":     {"Inspire"},
	"Inspire 1 Pro": {"Inspire"},
	"Inspire 1":     {"Inspire"},

	// Autel série EVO II
	"EVO II Pro":               {"EVO II"},
	"EVO II Dual":              {"EVO II"},
	"EVO II Pro 6K":            {"EVO II"},
	"EVO II Pro Rugged Bundle": {"EVO II"},
	"EVO II RTK":               {"EVO II"},

	// Autel série EVO Max
	"EVO Max 4T": {"EVO Max"},
	"EVO Max 4N": {"EVO Max"},

	// Autel série EVO Nano
	"EVO Nano+": {"EVO Nano"},
	"EVO Nano":  {"EVO Nano"},

	// Autel série EVO Lite
	"EVO Lite+": {"EVO Lite"},
	"EVO Lite":  {"EVO Lite"},

	// Dahua
	"Dahua X820":  {"X820"},
	"Dahua X1200": {"X820", "X1200"},
	"Dahua X1500": {"X1500"},
	"Dahua X2000": {"X2000"},

	// Parrot
	"ANAFI":         {"ANAFI"},
	"ANAFI Thermal": {"ANAFI"},
	"ANAFI USA":     {"ANAFI"},
	"ANAFI Ai":      {"ANAFI"},

	// Skydio
	"Skydio 2":   {"Skydio 2"},
	"Skydio 2+":  {"Skydio 2"},
	"Skydio X2":  {"Skydio X2"},
	"Skydio X2D": {"Skydio X2"},
	"Skydio X2E": {"Skydio X2"},
}

// CompatibleModels devolve os tokens de família para o modelo informado.
// Modelo fora da tabela cai no próprio literal (self-fallback).
func CompatibleModels(equipmentModel string) []string {
	if equipmentModel == "" {
		return nil
	}

	if families, ok := modelCompatibilityMap[equipmentModel]; ok {
		return families
	}

	// Fallback: busca pela chave ignorando caixa
	normalized := strings.ToLower(equipmentModel)
	for model, families := range modelCompatibilityMap {
		if strings.ToLower(model) == normalized {
			return families
		}
	}

	return []string{equipmentModel}
}

// IsAccessoryCompatible decide se um acessório do catálogo serve para o
// modelo do equipamento pai. Entradas ausentes degradam para compatível
// (fail-open), nunca para incompatível.
func IsAccessoryCompatible(accessoryCompatibility []string, equipmentModel string) bool {
	// Sem lista de compatibilidade: serve para tudo
	if len(accessoryCompatibility) == 0 {
		return true
	}

	// Sem modelo: não há como filtrar, mostra tudo
	if equipmentModel == "" {
		return true
	}

	for _, family := range CompatibleModels(equipmentModel) {
		familyLower := strings.ToLower(family)
		for _, entry := range accessoryCompatibility {
			entryLower := strings.ToLower(entry)
			if strings.Contains(entryLower, familyLower) || strings.Contains(familyLower, entryLower) {
				return true
			}
		}
	}

	return false
}
