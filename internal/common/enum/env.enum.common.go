package enum

type EnvEnum string

const (
	DEVELOPMENT EnvEnum = "development"
	PRODUCTION  EnvEnum = "production"
)

func (e EnvEnum) IsValid() bool {
	switch e {
	case DEVELOPMENT, PRODUCTION:
		return true
	}
	return false
}
