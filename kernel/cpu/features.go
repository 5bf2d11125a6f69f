package cpu

// Feature is a bit in a FeatureSet.
type Feature uint32

// The subset of vendor-specific features probed by Features. Intel and AMD
// share the bit space; a given CPU only ever reports its own vendor's flags.
const (
	FeatureSSE Feature = 1 << iota
	FeatureSSE2
	FeatureSSE3
	FeatureSSSE3
	FeatureSSE41
	FeatureSSE42
	FeatureAVX
	FeatureAVX2
	FeatureHT
	FeatureTurbo
	Feature3DNow
	Feature3DNowExt
	FeatureSSE4A
	FeatureXOP
	FeatureFMA4
	FeatureTBM
	FeatureSVM
	FeatureTurboCore
	FeatureCoolQuiet

	featureCount = iota
)

var featureNames = [featureCount]string{
	"sse", "sse2", "sse3", "ssse3", "sse4_1", "sse4_2", "avx", "avx2", "ht", "turbo",
	"3dnow", "3dnowext", "sse4a", "xop", "fma4", "tbm", "svm", "cpb", "cool_quiet",
}

// FeatureSet is a bitmask of detected CPU features.
type FeatureSet uint32

// Has returns true if f is present in the set.
func (s FeatureSet) Has(f Feature) bool {
	return uint32(s)&uint32(f) != 0
}

// Visit invokes fn with the name of each feature in the set, in bit order.
func (s FeatureSet) Visit(fn func(name string)) {
	for i := 0; i < featureCount; i++ {
		if uint32(s)&(1<<uint(i)) != 0 {
			fn(featureNames[i])
		}
	}
}

// FeatureByName returns the feature reported by Visit as name.
func FeatureByName(name string) (Feature, bool) {
	for i, featureName := range featureNames {
		if featureName == name {
			return Feature(1 << uint(i)), true
		}
	}

	return 0, false
}

// Features probes the vendor-specific feature flags of the running CPU.
// Processors that are neither Intel nor AMD report an empty set.
func Features() FeatureSet {
	switch {
	case IsIntel():
		return intelFeatures()
	case IsAMD():
		return amdFeatures()
	default:
		return 0
	}
}

func intelFeatures() FeatureSet {
	var set FeatureSet

	_, _, ecx, edx := cpuidFn(1)
	set.setIf(edx&(1<<25) != 0, FeatureSSE)
	set.setIf(edx&(1<<26) != 0, FeatureSSE2)
	set.setIf(ecx&(1<<0) != 0, FeatureSSE3)
	set.setIf(ecx&(1<<9) != 0, FeatureSSSE3)
	set.setIf(ecx&(1<<19) != 0, FeatureSSE41)
	set.setIf(ecx&(1<<20) != 0, FeatureSSE42)
	set.setIf(ecx&(1<<28) != 0, FeatureAVX)
	set.setIf(edx&(1<<28) != 0, FeatureHT)

	_, ebx, _, _ := cpuidFn(7)
	set.setIf(ebx&(1<<5) != 0, FeatureAVX2)

	eax, _, _, _ := cpuidFn(6)
	set.setIf(eax&(1<<1) != 0, FeatureTurbo)

	return set
}

func amdFeatures() FeatureSet {
	var set FeatureSet

	_, _, ecx, edx := cpuidFn(0x80000001)
	set.setIf(edx&(1<<31) != 0, Feature3DNow)
	set.setIf(edx&(1<<30) != 0, Feature3DNowExt)
	set.setIf(ecx&(1<<6) != 0, FeatureSSE4A)
	set.setIf(ecx&(1<<11) != 0, FeatureXOP)
	set.setIf(ecx&(1<<16) != 0, FeatureFMA4)
	set.setIf(ecx&(1<<21) != 0, FeatureTBM)
	set.setIf(ecx&(1<<2) != 0, FeatureSVM)

	_, _, _, edx = cpuidFn(0x80000007)
	set.setIf(edx&(1<<9) != 0, FeatureTurboCore)
	set.setIf(edx&(1<<1) != 0, FeatureCoolQuiet)

	return set
}

func (s *FeatureSet) setIf(cond bool, f Feature) {
	if cond {
		*s |= FeatureSet(f)
	}
}
