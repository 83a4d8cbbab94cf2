package constants

import "os"

// GetServeAddr is the listen address for the voicing API.
func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetShapesTable names the DynamoDB table holding community chord shapes.
// Empty means the feature is disabled.
func GetShapesTable() string {
	return os.Getenv("SHAPES_TABLE")
}

// GetDynamoEndpoint overrides the DynamoDB endpoint, e.g. a local instance.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}
