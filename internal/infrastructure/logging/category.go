package logging

type Category string
type SubCategory string
type ExtraKey string

const (
	General         Category = "General"
	IO              Category = "IO"
	Internal        Category = "Internal"
	Mongo           Category = "Mongo"
	RabbitMQ        Category = "RabbitMQ"
	Validation      Category = "Validation"
	RequestResponse Category = "RequestResponse"
	Prometheus      Category = "Prometheus"
)

const (
	// General
	Startup         SubCategory = "Startup"
	Shutdown        SubCategory = "Shutdown"
	RateLimiting    SubCategory = "RateLimiting"
	ExternalService SubCategory = "ExternalService"

	// Mongo
	Insert SubCategory = "Insert"
	Query  SubCategory = "Query"
	Update SubCategory = "Update"
	Index  SubCategory = "Index"

	// RabbitMQ
	Publish SubCategory = "Publish"
	Consume SubCategory = "Consume"
)

const (
	AppName        ExtraKey = "AppName"
	LoggerName     ExtraKey = "Logger"
	CategoryKey    ExtraKey = "Category"
	SubCategoryKey ExtraKey = "SubCategory"
	ClientIp       ExtraKey = "ClientIp"
	Method         ExtraKey = "Method"
	StatusCode     ExtraKey = "StatusCode"
	BodySize       ExtraKey = "BodySize"
	Path           ExtraKey = "Path"
	Latency        ExtraKey = "Latency"
	ErrorMessage   ExtraKey = "ErrorMessage"
)
