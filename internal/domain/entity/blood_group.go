package entity

// BloodGroup is one of the eight ABO/Rh classifications.
type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A+"
	BloodGroupANegative  BloodGroup = "A-"
	BloodGroupBPositive  BloodGroup = "B+"
	BloodGroupBNegative  BloodGroup = "B-"
	BloodGroupABPositive BloodGroup = "AB+"
	BloodGroupABNegative BloodGroup = "AB-"
	BloodGroupOPositive  BloodGroup = "O+"
	BloodGroupONegative  BloodGroup = "O-"
)

// AllBloodGroups lists every valid blood group.
var AllBloodGroups = []BloodGroup{
	BloodGroupAPositive, BloodGroupANegative,
	BloodGroupBPositive, BloodGroupBNegative,
	BloodGroupABPositive, BloodGroupABNegative,
	BloodGroupOPositive, BloodGroupONegative,
}

// Valid reports whether g is one of the eight ABO/Rh groups.
func (g BloodGroup) Valid() bool {
	for _, bg := range AllBloodGroups {
		if g == bg {
			return true
		}
	}
	return false
}

func (g BloodGroup) String() string {
	return string(g)
}
