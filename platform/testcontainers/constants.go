package testcontainers

// Environment keys read by the parts service config and by the mongo image.
const (
	MongoContainerName = "mongo"
	MongoPort          = "27017"

	MongoURIKey        = "MONGO_URI"
	MongoHostKey       = "MONGO_HOST"
	MongoPortKey       = "MONGO_PORT"
	MongoDatabaseKey   = "MONGO_DATABASE"
	MongoCollectionKey = "MONGO_PARTS_COLLECTION"
	MongoUsernameKey   = "MONGO_INITDB_ROOT_USERNAME"
	MongoPasswordKey   = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
	MongoAuthDBKey     = "MONGO_AUTH_DB"
)
