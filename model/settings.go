package model

type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

// AppSettings are per-user display and behavior preferences. They do not
// feed the stats engine; SuccessThreshold is surfaced to clients that want
// a softer bar than full goal completion.
type AppSettings struct {
	UserID           string `bson:"user_id" json:"-"`
	Theme            Theme  `bson:"theme" json:"theme"`
	Notifications    bool   `bson:"notifications" json:"notifications"`
	SuccessThreshold int    `bson:"success_threshold" json:"success_threshold"`
}

func DefaultSettings(userID string) *AppSettings {
	return &AppSettings{
		UserID:           userID,
		Theme:            ThemeDark,
		Notifications:    false,
		SuccessThreshold: 80,
	}
}
