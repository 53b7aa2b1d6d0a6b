package config

type Warner interface {
	Warnf(format string, a ...interface{})
}

func warnIgnored(warner Warner, ignoredKey, overridingKey string) {
	warner.Warnf("%s is ignored since %s is set", ignoredKey, overridingKey)
}
