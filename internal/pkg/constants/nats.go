package constants

// Load change feed
const (
	// SubjectLoadEvent is formatted with the event type, e.g. loads.accepted
	SubjectLoadEvent = "loads.%s"
	// SubjectLoadEvents matches every load event
	SubjectLoadEvents = "loads.*"
	// QueueGeoIndex load-balances geo index sync across replicas
	QueueGeoIndex = "loads-geo-index"

	// TopicLoadEvents carries every load event when NSQ is the broker
	TopicLoadEvents = "load_events"
	// ChannelGeoIndex is the NSQ channel of the geo index consumer
	ChannelGeoIndex = "geo_index"
)

// Event brokers
const (
	BrokerNATS = "nats"
	BrokerNSQ  = "nsq"
)
