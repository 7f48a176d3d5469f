package stats

// Kind identifies the shape of a registered counter.
type Kind uint8

const (
	// KindScalar is a single fixed-width value.
	KindScalar Kind = iota

	// KindArray is a fixed-length vector of one fixed-width kind.
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// ElemKind identifies the fixed-width numeric kind of a counter element.
type ElemKind uint8

const (
	ElemU8 ElemKind = iota
	ElemU16
	ElemU32
	ElemU64
	ElemI8
	ElemI16
	ElemI32
	ElemI64
	ElemF32
	ElemF64
)

var elemKindNames = [...]string{
	ElemU8:  "uint8",
	ElemU16: "uint16",
	ElemU32: "uint32",
	ElemU64: "uint64",
	ElemI8:  "int8",
	ElemI16: "int16",
	ElemI32: "int32",
	ElemI64: "int64",
	ElemF32: "float32",
	ElemF64: "float64",
}

func (k ElemKind) String() string {
	if int(k) < len(elemKindNames) {
		return elemKindNames[k]
	}
	return "unknown"
}

// Size returns the encoded element size in bytes.
func (k ElemKind) Size() int {
	switch k {
	case ElemU8, ElemI8:
		return 1
	case ElemU16, ElemI16:
		return 2
	case ElemU32, ElemI32, ElemF32:
		return 4
	case ElemU64, ElemI64, ElemF64:
		return 8
	default:
		return 0
	}
}

// elemKindOf maps a type parameter to its ElemKind.
func elemKindOf[T Fixed]() ElemKind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return ElemU8
	case uint16:
		return ElemU16
	case uint32:
		return ElemU32
	case uint64:
		return ElemU64
	case int8:
		return ElemI8
	case int16:
		return ElemI16
	case int32:
		return ElemI32
	case int64:
		return ElemI64
	case float32:
		return ElemF32
	default:
		return ElemF64
	}
}

// StatInfo describes one registered counter: what it holds and where it
// lives in the arena.
type StatInfo struct {
	Path   string   // dotted path including the counter name, e.g. "cache.hits"
	Name   string   // counter name within its node
	Kind   Kind     // scalar or array
	Elem   ElemKind // element kind
	Elems  int      // element count (1 for scalars)
	Offset int      // first arena byte
	Size   int      // total bytes, Elems * Elem.Size()
}
