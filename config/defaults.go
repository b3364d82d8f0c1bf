package config

// Column defaults for the food-safety open API datasets (C003 and relatives).
// Text candidates cover every free-text column that may carry ingredient or
// functionality wording; only columns present in a batch's schema are used.
var (
	defaultTextColumns = []string{
		"PRDLST_NM", "PRDT_NM",
		"RAWMTRL_NM", "RAWMTRL", "RAWMTRL_CN",
		"PRIMARY_FNCLTY", "SKLL_IX_IRDNT_RAWMTRL",
		"IFTKN_ATNT_MATR_CN",
	}

	defaultMetaColumns = []string{
		"PRDLST_NM", "BSSH_NM", "PRMS_DT", "CHNG_DT",
		"PRDLST_REPORT_NO", "LCNS_NO",
	}

	defaultFallbackMetaColumns = []string{"PRDLST_NM", "BSSH_NM"}
)

// supplementKeywords detects nutrient and functional ingredients in merged
// product text. Patterns carry Korean and English synonyms and abbreviations;
// all groups are non-capturing.
var supplementKeywords = map[string]string{
	"vitamin_c": `(?:비타민\s*c|vitamin\s*c|ascorbic)`,
	"vitamin_b": `(?:비타민\s*b|vitamin\s*b|b1|b2|b6|b12|비오틴|나이아신|판토텐산|엽산)`,
	"vitamin_d": `(?:비타민\s*d|vitamin\s*d)`,
	"zinc":      `(?:아연|zinc)`,
	"magnesium": `(?:마그네슘|magnesium)`,
	"iron":      `(?:철|iron)`,
	"folate":    `(?:엽산|folate)`,
	"selenium":  `(?:셀레늄|selenium)`,

	"probiotics": `(?:프로바이오틱|유산균|lactobac|bifido|probiotic)`,
	"prebiotics": `(?:프리바이오틱|이눌린|inulin|프락토올리고당|올리고당)`,

	"lutein":      `(?:루테인|lutein|지아잔틴|zeaxanthin)`,
	"astaxanthin": `(?:아스타잔틴|astaxanthin)`,

	"collagen":   `(?:콜라겐|collagen)`,
	"hyaluronic": `(?:히알루론산|hyaluronic)`,

	"calcium": `(?:칼슘|calcium)`,

	"msm":         `(?:msm|엠에스엠)`,
	"glucosamine": `(?:글루코사민|glucosamine)`,
	"chondroitin": `(?:콘드로이친|chondroitin)`,

	"omega3":       `(?:오메가\s*3|omega\s*3|epa|dha)`,
	"coq10":        `(?:코엔자임\s*q10|coq10|유비퀴논)`,
	"milk_thistle": `(?:밀크씨슬|실리마린|silymarin)`,
	"red_ginseng":  `(?:홍삼|red\s*ginseng|진세노사이드)`,
	"l_theanine":   `(?:l-?테아닌|theanine)`,
	"melatonin":    `(?:멜라토닌|melatonin)`,
	"garcinia":     `(?:가르시니아|garcinia)`,
	"green_tea":    `(?:녹차|green\s*tea|카테킨|catechin)`,
}

// supplementNeeds maps a user need to the ingredients that address it and
// how strongly each one counts.
var supplementNeeds = map[string]map[string]int{
	"fatigue": {
		"vitamin_c":   2,
		"vitamin_b":   3,
		"magnesium":   1,
		"iron":        1,
		"coq10":       2,
		"red_ginseng": 3,
	},
	"immune": {
		"vitamin_c":   3,
		"vitamin_d":   2,
		"zinc":        2,
		"selenium":    1,
		"red_ginseng": 2,
	},
	"sleep": {
		"melatonin":  3,
		"l_theanine": 2,
		"magnesium":  1,
	},
	"gut": {
		"probiotics": 3,
		"prebiotics": 2,
	},
	"eye": {
		"lutein":      3,
		"astaxanthin": 2,
	},
	"liver": {
		"milk_thistle": 3,
	},
	"joint": {
		"glucosamine": 2,
		"chondroitin": 2,
		"msm":         1,
	},
	"diet": {
		"garcinia":  2,
		"green_tea": 2,
	},
	"skin": {
		"collagen":   2,
		"hyaluronic": 2,
		"vitamin_c":  1,
	},
}

// gutKeywords is the gut-health variant: a narrower table focused on strains
// and fibers, usable against the same registry columns.
var gutKeywords = map[string]string{
	"probiotics":    `(?:프로바이오틱|유산균|probiotic)`,
	"prebiotics":    `(?:프리바이오틱|prebiotic)`,
	"lactobacillus": `(?:락토바실러스|lactobac|락토균)`,
	"bifidus":       `(?:비피더스|비피도박테리움|bifido)`,
	"inulin":        `(?:이눌린|inulin)`,
	"oligosaccharide": `(?:프락토올리고당|갈락토올리고당|올리고당|oligosaccharide)`,
	"fiber":         `(?:식이섬유|차전자피|psyllium|fiber|fibre)`,
	"zinc":          `(?:아연|zinc)`,
	"glutamine":     `(?:글루타민|glutamine)`,
	"postbiotics":   `(?:포스트바이오틱|사균체|postbiotic)`,
}

var gutNeeds = map[string]map[string]int{
	"balance": {
		"probiotics":    3,
		"lactobacillus": 2,
		"bifidus":       2,
		"postbiotics":   1,
	},
	"regularity": {
		"fiber":           3,
		"inulin":          2,
		"oligosaccharide": 2,
		"prebiotics":      1,
	},
	"barrier": {
		"glutamine":  3,
		"zinc":       2,
		"probiotics": 1,
	},
}

// DefaultProfiles returns the built-in profiles keyed by tag. The result is
// freshly allocated on every call so callers may extend or replace entries
// without affecting other callers.
func DefaultProfiles() map[string]*Profile {
	supplement := &Profile{
		Tag:      "supplement",
		Keywords: copyKeywords(supplementKeywords),
		Needs:    copyNeeds(supplementNeeds),
	}
	supplement.ApplyDefaults()

	gut := &Profile{
		Tag:      "gut",
		Keywords: copyKeywords(gutKeywords),
		Needs:    copyNeeds(gutNeeds),
	}
	gut.ApplyDefaults()

	return map[string]*Profile{
		supplement.Tag: supplement,
		gut.Tag:        gut,
	}
}

func copyKeywords(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func copyNeeds(src map[string]map[string]int) map[string]map[string]int {
	out := make(map[string]map[string]int, len(src))
	for need, weights := range src {
		w := make(map[string]int, len(weights))
		for k, v := range weights {
			w[k] = v
		}
		out[need] = w
	}
	return out
}
