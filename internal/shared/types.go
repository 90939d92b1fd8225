package shared

// Background task types routed through the worker.
const (
	TypeDeactivateExpiredBanners  = "banners:deactivate_expired"
	TypeDeactivateExpiredHomepage = "homepage:deactivate_expired"
)

// Worker queues
const (
	QueueDefault = "default"
	QueueLow     = "low"
)
