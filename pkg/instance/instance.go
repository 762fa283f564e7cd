package instance

import "github.com/angelmondragon/lotflow-backend/pkg/env"

// GetID returns the dyno or worker identifier of this process, or "local".
func GetID() string {
	if id := env.Get("DYNO", ""); id != "" {
		return id
	}
	return env.Get("WORKER_ID", "local")
}
