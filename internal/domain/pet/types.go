package pet

type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesFish   Species = "fish"
	SpeciesOther  Species = "other"
)

func (s Species) String() string {
	return string(s)
}

func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesFish, SpeciesOther:
		return true
	default:
		return false
	}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

func (s Size) String() string {
	return string(s)
}

func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}
