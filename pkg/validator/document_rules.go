package validator

import "slices"

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// validDDDs lists the Brazilian area codes in service. Allocation is an ANATEL
// policy decision, so the list is kept verbatim rather than derived.
var validDDDs = map[string]struct{}{
	"11": {}, "12": {}, "13": {}, "14": {}, "15": {}, "16": {}, "17": {}, "18": {}, "19": {},
	"21": {}, "22": {}, "24": {}, "27": {}, "28": {},
	"31": {}, "32": {}, "33": {}, "34": {}, "35": {}, "37": {}, "38": {},
	"41": {}, "42": {}, "43": {}, "44": {}, "45": {}, "46": {}, "47": {}, "48": {}, "49": {},
	"51": {}, "53": {}, "54": {}, "55": {},
	"61": {}, "62": {}, "63": {}, "64": {}, "65": {}, "66": {}, "67": {}, "68": {}, "69": {},
	"71": {}, "73": {}, "74": {}, "75": {}, "77": {}, "79": {},
	"81": {}, "82": {}, "83": {}, "84": {}, "85": {}, "86": {}, "87": {}, "88": {}, "89": {},
	"91": {}, "92": {}, "93": {}, "94": {}, "95": {}, "96": {}, "97": {}, "98": {}, "99": {},
}

// ValidDDDs returns the accepted area codes in ascending order.
func ValidDDDs() []string {
	codes := make([]string, 0, len(validDDDs))
	for code := range validDDDs {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// IsCPF reports whether s holds a CPF with valid check digits. Punctuation is ignored.
func IsCPF(s string) bool {
	d := digitsOf(s)
	if len(d) != 11 || allEqual(d) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (10 - i)
	}
	first := 11 - sum%11
	if first >= 10 {
		first = 0
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += d[i] * (11 - i)
	}
	second := 11 - sum%11
	if second >= 10 {
		second = 0
	}

	return first == d[9] && second == d[10]
}

// IsCNPJ reports whether s holds a CNPJ with valid check digits. Punctuation is ignored.
func IsCNPJ(s string) bool {
	d := digitsOf(s)
	if len(d) != 14 || allEqual(d) {
		return false
	}

	return cnpjDigit(d, cnpjFirstWeights) == d[12] &&
		cnpjDigit(d, cnpjSecondWeights) == d[13]
}

func cnpjDigit(d, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// IsTelefone reports whether s is a 10 or 11 digit Brazilian number whose
// first two digits are an area code in service.
func IsTelefone(s string) bool {
	digits := onlyDigits(s)
	if len(digits) != 10 && len(digits) != 11 {
		return false
	}
	_, ok := validDDDs[digits[:2]]
	return ok
}

// IsCEP reports whether s holds exactly eight digits.
func IsCEP(s string) bool {
	return len(onlyDigits(s)) == 8
}

func checkCPF(value, _ any) bool {
	if isFalsy(value) {
		return true
	}
	return IsCPF(toString(value))
}

func checkCNPJ(value, _ any) bool {
	if isFalsy(value) {
		return true
	}
	return IsCNPJ(toString(value))
}

func checkTelefone(value, _ any) bool {
	if isFalsy(value) {
		return true
	}
	return IsTelefone(toString(value))
}

func checkCEP(value, _ any) bool {
	if isFalsy(value) {
		return true
	}
	return IsCEP(toString(value))
}

func digitsOf(s string) []int {
	digits := onlyDigits(s)
	d := make([]int, len(digits))
	for i := range digits {
		d[i] = int(digits[i] - '0')
	}
	return d
}

func allEqual(d []int) bool {
	for _, n := range d[1:] {
		if n != d[0] {
			return false
		}
	}
	return true
}
