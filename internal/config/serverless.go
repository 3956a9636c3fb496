package config

import "os"

// DeploymentMode distinguishes the two ways the API runs: as per-invocation
// cloud functions or as a long-lived server process.
type DeploymentMode string

const (
	ModeServerless DeploymentMode = "serverless"
	ModeServer     DeploymentMode = "server"
)

// RuntimeInfo describes the environment the process was started in
type RuntimeInfo struct {
	Mode         DeploymentMode
	FunctionName string
	Region       string
	Stage        string
}

// DetectRuntime inspects the environment and reports how the process is
// deployed. The function runtime is recognized by the function name variable
// it always sets; everything else is a server.
func DetectRuntime() *RuntimeInfo {
	info := &RuntimeInfo{
		Mode:         ModeServer,
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       os.Getenv("AWS_REGION"),
		Stage:        GetEnv("STAGE", "dev"),
	}

	if info.FunctionName != "" {
		info.Mode = ModeServerless
	}

	return info
}

// IsServerlessMode reports whether the process runs as a cloud function
func IsServerlessMode() bool {
	return DetectRuntime().Mode == ModeServerless
}
