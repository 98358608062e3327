package domain

// Platform is the UI-facing key for an advertising platform. The remote API
// speaks its own wire enumeration (META, GOOGLE, ...); the mapping tables
// below translate between the two. The key set is closed: every Platform
// constant has a wire value.
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformGoogle   Platform = "google"
	PlatformTikTok   Platform = "tiktok"
)

// Objective is the UI-facing key for a campaign objective.
type Objective string

const (
	ObjectiveConversions Objective = "conversions"
	ObjectiveTraffic     Objective = "traffic"
	ObjectiveAwareness   Objective = "awareness"
	ObjectiveEngagement  Objective = "engagement"
	ObjectiveLeads       Objective = "leads"
	ObjectiveSales       Objective = "sales"
)

// DefaultObjective is used when a remote campaign carries an objective the
// dashboard does not recognise.
const DefaultObjective = ObjectiveConversions

var platformWire = map[Platform]string{
	PlatformFacebook: "META",
	PlatformGoogle:   "GOOGLE",
	PlatformTikTok:   "TIKTOK",
}

var objectiveWire = map[Objective]string{
	ObjectiveConversions: "CONVERSIONS",
	ObjectiveTraffic:     "TRAFFIC",
	ObjectiveAwareness:   "AWARENESS",
	ObjectiveEngagement:  "ENGAGEMENT",
	ObjectiveLeads:       "LEADS",
	ObjectiveSales:       "SALES",
}

var (
	platformFromWire  = invert(platformWire)
	objectiveFromWire = invert(objectiveWire)
)

func invert[K ~string](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Wire returns the remote enumeration value for p. ok is false for keys
// outside the defined set.
func (p Platform) Wire() (string, bool) {
	w, ok := platformWire[p]
	return w, ok
}

// Wire returns the remote enumeration value for o. ok is false for keys
// outside the defined set.
func (o Objective) Wire() (string, bool) {
	w, ok := objectiveWire[o]
	return w, ok
}

// PlatformFromWire decodes a remote platform value. Unknown values return
// ok=false so collection decoders can filter them out instead of failing.
func PlatformFromWire(wire string) (Platform, bool) {
	p, ok := platformFromWire[wire]
	return p, ok
}

// ObjectiveFromWire decodes a remote objective value.
func ObjectiveFromWire(wire string) (Objective, bool) {
	o, ok := objectiveFromWire[wire]
	return o, ok
}

// ObjectiveFromWireOrDefault decodes a remote objective value, collapsing
// unknown values to DefaultObjective. A campaign created elsewhere with an
// objective this dashboard does not know must still be editable.
func ObjectiveFromWireOrDefault(wire string) Objective {
	if o, ok := objectiveFromWire[wire]; ok {
		return o
	}
	return DefaultObjective
}

// EncodePlatforms maps a platform selection to wire values, preserving
// selection order. Keys outside the defined set are skipped.
func EncodePlatforms(ps []Platform) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		if w, ok := platformWire[p]; ok {
			out = append(out, w)
		}
	}
	return out
}

// DecodePlatforms maps wire values back to platform keys, preserving order.
// Unrecognised wire values are dropped silently: a campaign carrying a
// platform the dashboard does not yet know must not break the wizard. The
// number of dropped values is returned so callers can log the degradation.
func DecodePlatforms(wire []string) ([]Platform, int) {
	out := make([]Platform, 0, len(wire))
	dropped := 0
	for _, w := range wire {
		p, ok := platformFromWire[w]
		if !ok {
			dropped++
			continue
		}
		out = append(out, p)
	}
	return out, dropped
}

// Platforms returns all defined platform keys in stable order, for
// validation and UI listings.
func Platforms() []Platform {
	return []Platform{PlatformFacebook, PlatformGoogle, PlatformTikTok}
}

// Objectives returns all defined objective keys in stable order.
func Objectives() []Objective {
	return []Objective{
		ObjectiveConversions, ObjectiveTraffic, ObjectiveAwareness,
		ObjectiveEngagement, ObjectiveLeads, ObjectiveSales,
	}
}
