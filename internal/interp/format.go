package interp

import (
	"strconv"
	"strings"

	"github.com/rill-lang/rill/internal/types"
)

// FormatValue renders the value ty describes, read out of regFile, using
// the declarative external form: Int as decimal, Bool as true/false, Maybe
// as some(inner) or none depending on its tag, and Tuple as the
// concatenation of its components' renderings.
func FormatValue(ty types.Type, regFile []int32) string {
	switch v := ty.(type) {
	case *types.Int:
		return strconv.FormatInt(int64(regFile[v.Var]), 10)
	case *types.Bool:
		if regFile[v.Var] != 0 {
			return "true"
		}
		return "false"
	case *types.Maybe:
		if regFile[v.Tag] != 0 {
			return "some(" + FormatValue(v.Inner, regFile) + ")"
		}
		return "none"
	case *types.Tuple:
		var sb strings.Builder
		for _, e := range v.Elems {
			sb.WriteString(FormatValue(e, regFile))
		}
		return sb.String()
	case *types.Func:
		return "<function>"
	default:
		panic("interp: unknown type")
	}
}
