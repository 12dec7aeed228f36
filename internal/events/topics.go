package events

const (
	TopicNotificationRequested = "shop.notification.requested"
)

// Partition key = session id, so one visitor's notifications stay ordered.
func PartitionKey(sessionID string) []byte { return []byte(sessionID) }
