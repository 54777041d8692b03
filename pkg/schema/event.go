package schema

import "time"

const CatalogEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "catalog",
	"name": "catalog_event",
	"fields": [
		{"name": "product_id", "type": "long"},
		{"name": "action", "type": "string"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

// CatalogEventV1 is the wire form of one applied bulk mutation.
type CatalogEventV1 struct {
	ProductID  int64     `avro:"product_id"`
	Action     string    `avro:"action"`
	OccurredAt time.Time `avro:"occurred_at"`
}
