package config

const EnvPrefix = "VECKIT_"

const (
	EnvPhase     = EnvPrefix + "PHASE"
	EnvFormat    = EnvPrefix + "FORMAT"
	EnvPrecision = EnvPrefix + "PRECISION"
	EnvLogLevel  = EnvPrefix + "LOG_LEVEL"
)

// phase 0 puts angle 0 on +x
const DefaultPhase = 0.0

const DefaultFormat = FormatText
const DefaultPrecision = 6

// MaxPrecision is the most decimals the calculator prints.
const MaxPrecision = 6
const DefaultLogLevel = "warn"

const Prompt = "vec> "
