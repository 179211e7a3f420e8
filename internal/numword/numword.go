// Package numword spells integers as Spanish words.
package numword

import "strconv"

// MaxCardinal is the largest magnitude spelled out as words.
// Larger values are returned as plain digits.
const MaxCardinal = 999999

// cardinals holds the anchors every other value is derived from.
var cardinals = map[int]string{
	0:    "cero",
	1:    "uno",
	2:    "dos",
	3:    "tres",
	4:    "cuatro",
	5:    "cinco",
	6:    "seis",
	7:    "siete",
	8:    "ocho",
	9:    "nueve",
	10:   "diez",
	11:   "once",
	12:   "doce",
	13:   "trece",
	14:   "catorce",
	15:   "quince",
	16:   "dieciséis",
	17:   "diecisiete",
	18:   "dieciocho",
	19:   "diecinueve",
	20:   "veinte",
	21:   "veintiuno",
	22:   "veintidós",
	23:   "veintitrés",
	24:   "veinticuatro",
	25:   "veinticinco",
	26:   "veintiséis",
	27:   "veintisiete",
	28:   "veintiocho",
	29:   "veintinueve",
	30:   "treinta",
	40:   "cuarenta",
	50:   "cincuenta",
	60:   "sesenta",
	70:   "setenta",
	80:   "ochenta",
	90:   "noventa",
	100:  "cien",
	200:  "doscientos",
	300:  "trescientos",
	400:  "cuatrocientos",
	500:  "quinientos",
	600:  "seiscientos",
	700:  "setecientos",
	800:  "ochocientos",
	900:  "novecientos",
	1000: "mil",
}

var ordinals = map[int]string{
	1:  "primero",
	2:  "segundo",
	3:  "tercero",
	4:  "cuarto",
	5:  "quinto",
	6:  "sexto",
	7:  "séptimo",
	8:  "octavo",
	9:  "noveno",
	10: "décimo",
}

// Cardinal returns the Spanish cardinal words for n.
//
// Exact 100 is "cien"; as the leading part of 101-199 it becomes "ciento"
// ("ciento uno", "ciento cincuenta mil"). Magnitudes above MaxCardinal are
// returned as digits, prefixed with "menos" when negative.
func Cardinal(n int) string {
	if n < 0 {
		if n < -MaxCardinal {
			// strconv avoids negating math.MinInt.
			return "menos " + strconv.Itoa(n)[1:]
		}
		return "menos " + Cardinal(-n)
	}

	if w, ok := cardinals[n]; ok {
		return w
	}

	switch {
	case n < 100:
		return cardinals[n/10*10] + " y " + cardinals[n%10]
	case n < 1000:
		return hundreds(n/100) + " " + Cardinal(n%100)
	case n <= MaxCardinal:
		k, r := n/1000, n%1000
		thousands := "mil"
		if k > 1 {
			thousands = Cardinal(k) + " mil"
		}
		if r == 0 {
			return thousands
		}
		return thousands + " " + Cardinal(r)
	default:
		return strconv.Itoa(n)
	}
}

// hundreds returns the leading word of a compound hundred (h in 1..9).
func hundreds(h int) string {
	if h == 1 {
		return "ciento"
	}
	return cardinals[h*100]
}

// Ordinal returns the ordinal word for 1-10 and "<cardinal>º" otherwise.
func Ordinal(n int) string {
	if w, ok := ordinals[n]; ok {
		return w
	}
	return Cardinal(n) + "º"
}

// IsAnchor reports whether n has a direct entry in the cardinal table.
func IsAnchor(n int) bool {
	_, ok := cardinals[n]
	return ok
}
