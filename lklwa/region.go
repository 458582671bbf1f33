package lklwa

import "github.com/stackmill/lambdakit/lkenv"

// Region selects which AWS region a registered client targets.
type Region interface {
	// resolve returns the AWS region name, or "" to keep the SDK default.
	resolve(env lkenv.Environment) string
	// key distinguishes clients of the same type across regions.
	key() string
}

type localRegion struct{}

func (localRegion) resolve(lkenv.Environment) string { return "" }
func (localRegion) key() string                      { return "local" }

// LocalRegion targets the Lambda's own region (AWS_REGION). This is the
// default for registered clients.
func LocalRegion() Region { return localRegion{} }

type primaryRegion struct{}

func (primaryRegion) resolve(env lkenv.Environment) string { return env.PrimaryRegion() }
func (primaryRegion) key() string                          { return "primary" }

// PrimaryRegion targets the primary deployment region (PRIMARY_REGION).
// Use this for shared resources that live only in the primary region.
func PrimaryRegion() Region { return primaryRegion{} }

type fixedRegion struct{ region string }

func (r fixedRegion) resolve(lkenv.Environment) string { return r.region }
func (r fixedRegion) key() string                      { return "fixed:" + r.region }

// FixedRegion targets a specific region regardless of deployment.
func FixedRegion(region string) Region { return fixedRegion{region: region} }
