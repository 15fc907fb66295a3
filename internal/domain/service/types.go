package service

type Category string

const (
	CategoryGrooming   Category = "grooming"
	CategoryVeterinary Category = "veterinary"
	CategoryTraining   Category = "training"
	CategoryBoarding   Category = "boarding"
	CategoryWalking    Category = "walking"
	CategorySitting    Category = "sitting"
	CategoryOther      Category = "other"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryGrooming, CategoryVeterinary, CategoryTraining,
		CategoryBoarding, CategoryWalking, CategorySitting, CategoryOther:
		return true
	default:
		return false
	}
}
