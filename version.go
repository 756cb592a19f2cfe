package clovy

// VersionInfo is the monotone version tuple plus the dialect flags that
// parameterize every codec in the engine. A session owns exactly one
// VersionInfo; it only ever moves forward (see Set).
type VersionInfo struct {
	Major, Minor, Release, Build int32

	// FormatID is the bytecode format byte read from GEN8.
	FormatID int8

	AlignChunksTo16     bool
	AlignStringsTo4     bool
	AlignBackgroundsTo8 bool
	RoomObjectPreCreate bool
	DifferentVarCounts  bool
	OptionBitFlag       bool
	RunFromIDE          bool
	ShortCircuit        bool

	// BuiltinAudioGroupID is derived; recomputed on every Set call.
	BuiltinAudioGroupID int32
}

// NewVersionInfo returns the documented defaults: V=(1,0,0,0) and the
// default dialect flags from spec.md §4.3.
func NewVersionInfo() *VersionInfo {
	v := &VersionInfo{
		Major:               1,
		AlignChunksTo16:     true,
		AlignStringsTo4:     true,
		AlignBackgroundsTo8: true,
		OptionBitFlag:       true,
		ShortCircuit:        true,
	}
	v.recomputeBuiltinAudioGroupID()
	return v
}

// AtLeast reports whether the current version is lexicographically >= the
// given tuple.
func (v *VersionInfo) AtLeast(major, minor, release, build int32) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	if v.Release != release {
		return v.Release > release
	}
	if v.Build != build {
		return v.Build > build
	}
	return true
}

// Set takes the lexicographic max of the current version and the given
// tuple — it never moves the version backward — then recomputes the
// derived builtin audio group id. This is the only state transition in the
// engine's version state machine; GEN8 decode, the format probes, and a
// handful of dialect-detecting entity decoders are its only callers.
func (v *VersionInfo) Set(major, minor, release, build int32) {
	switch {
	case v.Major < major:
		v.Major, v.Minor, v.Release, v.Build = major, minor, release, build
	case v.Major > major:
		// no change
	case v.Minor < minor:
		v.Minor, v.Release, v.Build = minor, release, build
	case v.Minor > minor:
		// no change
	case v.Release < release:
		v.Release, v.Build = release, build
	case v.Release > release:
		// no change
	case v.Build < build:
		v.Build = build
	}
	v.recomputeBuiltinAudioGroupID()
}

func (v *VersionInfo) recomputeBuiltinAudioGroupID() {
	modern := v.Major >= 2 || (v.Major == 1 && (v.Build >= 1354 || (v.Build >= 161 && v.Build < 1000)))
	if modern {
		v.BuiltinAudioGroupID = 0
	} else {
		v.BuiltinAudioGroupID = 1
	}
}
