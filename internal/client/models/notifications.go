package models

// NotificationPrefs round-trips verbatim with the settings endpoint.
type NotificationPrefs struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
	PushNotifications  bool `json:"push_notifications"`
}
