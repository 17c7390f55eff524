package numfmt

import "sort"

// builtinFormats maps the standard numFmtId values to their format codes as
// defined by ECMA-376 §18.8.30.  Only the locale-independent IDs are listed;
// the CJK/Thai ranges (27–36, 50–58) and the accounting column layouts
// (41–44) are not supported and resolve to General.
var builtinFormats = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `"$"#,##0_);\("$"#,##0\)`,
	6:  `"$"#,##0_);[Red]\("$"#,##0\)`,
	7:  `"$"#,##0.00_);\("$"#,##0.00\)`,
	8:  `"$"#,##0.00_);[Red]\("$"#,##0.00\)`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

// GetBuiltinFormat returns the format code for a standard numFmtId.  Unknown
// IDs return "General".
func GetBuiltinFormat(id int) string {
	if s, ok := builtinFormats[id]; ok {
		return s
	}
	return "General"
}

// BuiltinIDs returns the known numFmtIds in ascending order.
func BuiltinIDs() []int {
	ids := make([]int, 0, len(builtinFormats))
	for id := range builtinFormats {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsBuiltinDateID reports whether id is a standard numFmtId whose format
// renders a date, a time of day or an elapsed time:
//
//	14–17   dates
//	18–21   times of day
//	22      date and time
//	45–47   minutes/seconds and elapsed hours
func IsBuiltinDateID(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 45 && id <= 47:
		return true
	}
	return false
}
