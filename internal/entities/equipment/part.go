package equipment

// Part is the body-part category an armor item is worn on
type Part string

// Define all armor parts, in display order
const (
	PartHead  Part = "head"
	PartBody  Part = "body"
	PartArm   Part = "arm"
	PartWaist Part = "waist"
	PartLeg   Part = "leg"
)

// PartCount is the number of armor parts a set can fill
const PartCount = 5

// String returns the string representation of the part
func (p Part) String() string {
	return string(p)
}

// IsValid checks if the part is one of the known categories
func (p Part) IsValid() bool {
	switch p {
	case PartHead, PartBody, PartArm, PartWaist, PartLeg:
		return true
	default:
		return false
	}
}

// Index returns the display position of the part, or PartCount for an
// unknown part so that it sorts last
func (p Part) Index() int {
	switch p {
	case PartHead:
		return 0
	case PartBody:
		return 1
	case PartArm:
		return 2
	case PartWaist:
		return 3
	case PartLeg:
		return 4
	default:
		return PartCount
	}
}

// AllParts returns every part in display order
func AllParts() []Part {
	return []Part{
		PartHead,
		PartBody,
		PartArm,
		PartWaist,
		PartLeg,
	}
}

// PartFromString converts a string to a Part
// Returns the part and true if valid, empty part and false if invalid
func PartFromString(s string) (Part, bool) {
	part := Part(s)
	if part.IsValid() {
		return part, true
	}
	return "", false
}
