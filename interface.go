package hjson

// Interface converts v into native Go values built from map[string]any,
// []any, string, bool, int64, float64, and nil — the same shape
// encoding/json would produce from the equivalent plain JSON, except that
// integers come out as int64 rather than float64. Comments
// and positions are dropped; this exists purely for callers (and the
// cmd/hjsonlint dump subcommand) that want the data without the
// decoder's formatting-preservation bookkeeping.
func (v *Value) Interface() interface{} {
	switch v.kind {
	case Null:
		return nil
	case Bool:
		return v.boolVal
	case Int64:
		return v.intVal
	case Double:
		return v.floatVal
	case String:
		return v.strVal
	case Vector:
		out := make([]interface{}, len(v.vecVal))
		for i := range v.vecVal {
			out[i] = v.vecVal[i].Interface()
		}
		return out
	case Map:
		out := make(map[string]interface{}, v.mapVal.Len())
		for _, k := range v.mapVal.Keys() {
			elem, _ := v.mapVal.Get(k)
			out[k] = elem.Interface()
		}
		return out
	default:
		return nil
	}
}
