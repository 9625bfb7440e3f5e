package customerv1

import "github.com/hamba/avro/v2"

// Avro schemas mirror customer.proto. Nested records are declared inline so
// each schema parses on its own.
var (
	emptySchema = avro.MustParse(`{
		"type": "record",
		"name": "Empty",
		"namespace": "customer.v1",
		"fields": []
	}`)

	customerSchema = avro.MustParse(customerRecord)

	customerListSchema = avro.MustParse(`{
		"type": "record",
		"name": "CustomerList",
		"namespace": "customer.v1",
		"fields": [
			{"name": "customers", "type": {"type": "array", "items": ` + customerRecord + `}}
		]
	}`)

	customerRequestIDSchema = avro.MustParse(`{
		"type": "record",
		"name": "CustomerRequestId",
		"namespace": "customer.v1",
		"fields": [
			{"name": "id", "type": "string"}
		]
	}`)

	removeResponseSchema = avro.MustParse(`{
		"type": "record",
		"name": "RemoveResponse",
		"namespace": "customer.v1",
		"fields": [
			{"name": "message", "type": "string"}
		]
	}`)
)

const customerRecord = `{
	"type": "record",
	"name": "Customer",
	"namespace": "customer.v1",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "age", "type": "int"},
		{"name": "address", "type": "string"}
	]
}`

// AvroSchema returns the Avro schema of Empty.
func (*Empty) AvroSchema() avro.Schema { return emptySchema }

// AvroSchema returns the Avro schema of Customer.
func (*Customer) AvroSchema() avro.Schema { return customerSchema }

// AvroSchema returns the Avro schema of CustomerList.
func (*CustomerList) AvroSchema() avro.Schema { return customerListSchema }

// AvroSchema returns the Avro schema of CustomerRequestId.
func (*CustomerRequestId) AvroSchema() avro.Schema { return customerRequestIDSchema }

// AvroSchema returns the Avro schema of RemoveResponse.
func (*RemoveResponse) AvroSchema() avro.Schema { return removeResponseSchema }
