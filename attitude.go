package rocketpy

import (
	"fmt"
	"os"
	"time"

	"github.com/ChristopherRabotin/ode"
	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
)

const (
	// StepSize is the default step size of attitude propagation.
	StepSize = 10 * time.Millisecond
)

/* Handles the rigid body rotational dynamics. */

// RigidBody defines a rotating body by its inertia tensor, expressed in the
// body frame in kg m².
type RigidBody struct {
	Name          string
	InertiaTensor Mat
	logger        kitlog.Logger
}

// NewRigidBody returns a RigidBody for the provided inertia tensor. The
// tensor must be 3x3 and invertible, otherwise the rotational equations of
// motion are undefined for this body.
func NewRigidBody(name string, tensor *mat64.Dense) (*RigidBody, error) {
	it, err := MatFromDense(tensor)
	if err != nil {
		return nil, err
	}
	if _, err = it.Inverse(); err != nil {
		return nil, fmt.Errorf("inertia tensor of %s: %w", name, err)
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "body", name)
	return &RigidBody{Name: name, InertiaTensor: it, logger: klog}, nil
}

// AngularMomentum returns H = Iω for the body angular velocity ω.
func (b *RigidBody) AngularMomentum(ω Vec) Vec {
	return b.InertiaTensor.MulVec(ω)
}

// AngularAcceleration returns ω̇ from Euler's rotational equations,
// ω̇ = I⁻¹ (τ - ω × Iω), with the torque τ in the body frame. The cross
// product goes through the skew symmetric matrix of ω.
func (b *RigidBody) AngularAcceleration(ω, τ Vec) Vec {
	inv, err := b.InertiaTensor.Inverse()
	if err != nil {
		// Checked at construction, so this is a programming error.
		panic(fmt.Errorf("inertia tensor of %s became singular: %w", b.Name, err))
	}
	gyro := ω.CrossMatrix().MulVec(b.InertiaTensor.MulVec(ω))
	return inv.MulVec(τ.Sub(gyro))
}

// AttitudePropagation propagates the attitude quaternion and angular
// velocity of a rigid body under a torque profile. It implements the
// Integrable interface of the ode package and is stepped by RK4; the solver
// itself stays external.
type AttitudePropagation struct {
	Body                       *RigidBody
	Attitude                   Quaternion // Body to inertial rotation, unit norm.
	Velocity                   Vec        // Body frame angular velocity in rad/s.
	Torque                     VectorFunc[float64]
	StartDT, StopDT, CurrentDT time.Time
	step                       time.Duration
	stopChan                   chan (bool)
	done                       bool
	logger                     kitlog.Logger
}

// NewAttitudePropagation is the same as NewPreciseAttitudePropagation with
// the configured default step size.
func NewAttitudePropagation(body *RigidBody, q0 Quaternion, ω0 Vec, τ VectorFunc[float64], start, end time.Time) *AttitudePropagation {
	return NewPreciseAttitudePropagation(body, q0, ω0, τ, start, end, DefaultStep())
}

// NewPreciseAttitudePropagation returns a new AttitudePropagation with a
// custom time step. The initial quaternion must be of unit norm.
func NewPreciseAttitudePropagation(body *RigidBody, q0 Quaternion, ω0 Vec, τ VectorFunc[float64], start, end time.Time, step time.Duration) *AttitudePropagation {
	if start.Location() != time.UTC {
		start = start.UTC()
	}
	if end.Location() != time.UTC {
		end = end.UTC()
	}
	a := &AttitudePropagation{body, q0, ω0, τ, start, end, start, step, make(chan (bool), 1), false, kitlog.With(body.logger, "subsys", "attitude")}
	if end.Before(start) {
		a.logger.Log("level", "warning", "message", "no end date")
	}
	return a
}

// LogStatus reports the current attitude and angular velocity.
func (a *AttitudePropagation) LogStatus() {
	a.logger.Log("level", "info", "dt", a.CurrentDT, "q", fmt.Sprintf("(%f, %f, %f, %f)", a.Attitude.W, a.Attitude.X, a.Attitude.Y, a.Attitude.Z), "ω(rad/s)", a.Velocity)
}

// Propagate starts the propagation and blocks until done.
func (a *AttitudePropagation) Propagate() {
	a.LogStatus()
	if Verbose() {
		ticker := time.NewTicker(10 * time.Second)
		go func() {
			for range ticker.C {
				if a.done {
					break
				}
				a.LogStatus()
			}
		}()
	}
	hInit := a.Body.AngularMomentum(a.Velocity).Magnitude()
	ode.NewRK4(0, a.step.Seconds(), a).Solve() // Blocking.
	a.done = true
	hFinal := a.Body.AngularMomentum(a.Velocity).Magnitude()
	a.logger.Log("level", "notice", "status", "finished", "duration", a.CurrentDT.Sub(a.StartDT), "ΔH(kg.m²/s)", hFinal-hInit)
	a.LogStatus()
}

// StopPropagation is used to stop the propagation before it is completed.
func (a *AttitudePropagation) StopPropagation() {
	a.stopChan <- true
}

// Stop implements the stop call of the integrator.
func (a *AttitudePropagation) Stop(t float64) bool {
	select {
	case <-a.stopChan:
		return true // Stop because there is a request to stop.
	default:
		a.CurrentDT = a.CurrentDT.Add(a.step)
		return a.CurrentDT.After(a.StopDT)
	}
}

// GetState returns the state for the integrator: the four quaternion
// components followed by the three angular velocity components.
func (a *AttitudePropagation) GetState() (s []float64) {
	return []float64{a.Attitude.W, a.Attitude.X, a.Attitude.Y, a.Attitude.Z, a.Velocity.X, a.Velocity.Y, a.Velocity.Z}
}

// SetState sets the updated state. The integrated quaternion is normalized
// here to keep the attitude on the unit sphere despite integration drift.
func (a *AttitudePropagation) SetState(t float64, s []float64) {
	q, err := Quaternion{W: s[0], X: s[1], Y: s[2], Z: s[3]}.Normalize()
	if err != nil {
		a.logger.Log("level", "critical", "dt", a.CurrentDT, "message", "attitude quaternion collapsed to zero")
		a.StopPropagation()
		return
	}
	a.Attitude = q
	a.Velocity = NewVector(s[4], s[5], s[6])
}

// Func is the integration function: quaternion kinematics and Euler's
// rotational equations.
func (a *AttitudePropagation) Func(t float64, f []float64) (fDot []float64) {
	q := Quaternion{W: f[0], X: f[1], Y: f[2], Z: f[3]}
	ω := NewVector(f[4], f[5], f[6])
	qDot := q.Rates(ω)
	ωDot := a.Body.AngularAcceleration(ω, a.Torque.At(t))
	return []float64{qDot.W, qDot.X, qDot.Y, qDot.Z, ωDot.X, ωDot.Y, ωDot.Z}
}
