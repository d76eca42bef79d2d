package config

// Default returns the default configuration. Note that the default observer
// carries no coordinates; callers fall back to a built-in example position
// when none are configured.
func Default() Config {
	return Config{
		UpdateInterval: "h",
		Events: Events{
			PrayerTimes: false,
		},
		Clock: Clock{
			DayColor:     "#87ceeb",
			HorizonColor: "#fa9e5a",
			NightColor:   "#0b1026",
			TextColor:    "#f8f8f2",
		},
	}
}
