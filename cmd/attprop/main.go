package main

import (
	"flag"
	"log"
	"strings"
	"time"

	rocketpy "github.com/AdvaitChandorkar07/RocketPy"
	"github.com/gonum/matrix/mat64"
	"github.com/soniakeys/meeus/julian"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and propagates the
// attitude of the described body.

const (
	defaultScenario = "~~unset~~"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "attitude scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read propagation parameters
	startDT := confReadJDEorTime("propagation.start")
	endDT := confReadJDEorTime("propagation.end")
	timeStep := viper.GetDuration("propagation.step")
	if timeStep == 0 {
		timeStep = rocketpy.StepSize
	}
	if verbose {
		log.Printf("[conf] time step: %s\n", timeStep)
	}

	// Read body: the inertia tensor is symmetric, so only six keys.
	bodyName := viper.GetString("body.name")
	ixx := viper.GetFloat64("body.ixx")
	iyy := viper.GetFloat64("body.iyy")
	izz := viper.GetFloat64("body.izz")
	ixy := viper.GetFloat64("body.ixy")
	ixz := viper.GetFloat64("body.ixz")
	iyz := viper.GetFloat64("body.iyz")
	body, err := rocketpy.NewRigidBody(bodyName, mat64.NewDense(3, 3, []float64{
		ixx, ixy, ixz,
		ixy, iyy, iyz,
		ixz, iyz, izz,
	}))
	if err != nil {
		log.Fatalf("could not create body `%s`: %s", bodyName, err)
	}

	// Read initial state
	q0 := rocketpy.Quaternion{
		W: viper.GetFloat64("state.qw"),
		X: viper.GetFloat64("state.qx"),
		Y: viper.GetFloat64("state.qy"),
		Z: viper.GetFloat64("state.qz"),
	}
	if q0 == (rocketpy.Quaternion{}) {
		q0 = rocketpy.IdentityQuaternion()
	}
	q0, err = q0.Normalize()
	if err != nil {
		log.Fatalf("invalid initial attitude: %s", err)
	}
	ω0 := rocketpy.NewVector(
		viper.GetFloat64("state.wx"),
		viper.GetFloat64("state.wy"),
		viper.GetFloat64("state.wz"),
	)

	// Read torque profile: constant body frame torque, optionally decaying.
	τ0 := rocketpy.NewVector(
		viper.GetFloat64("torque.x"),
		viper.GetFloat64("torque.y"),
		viper.GetFloat64("torque.z"),
	)
	τ := rocketpy.ConstantVectorFunc(τ0)
	if decay := viper.GetFloat64("torque.decay"); decay > 0 {
		τ = rocketpy.VectorFunc[float64]{
			X: func(t float64) float64 { return τ0.X * decayFactor(t, decay) },
			Y: func(t float64) float64 { return τ0.Y * decayFactor(t, decay) },
			Z: func(t float64) float64 { return τ0.Z * decayFactor(t, decay) },
		}
	}

	if verbose {
		log.Printf("[conf] θgst at start: %f rad", rocketpy.GST(startDT))
	}

	rocketpy.NewPreciseAttitudePropagation(body, q0, ω0, τ, startDT, endDT, timeStep).Propagate()
}

func decayFactor(t, decay float64) float64 {
	return 1 / (1 + t/decay)
}

func confReadJDEorTime(key string) (dt time.Time) {
	jde := viper.GetFloat64(key)
	if jde == 0 {
		dt = viper.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}
