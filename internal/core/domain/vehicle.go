package domain

import "fmt"

// Vehicle is the capability set shared by every vehicle.
type Vehicle interface {
	// Kind names the concrete variant ("Vehicle", "Car", "Bike").
	Kind() string

	// StartEngine marks the vehicle running and describes the start.
	StartEngine() string

	// StopEngine marks the vehicle stopped and describes the stop.
	StopEngine() string

	// Description returns a human-readable summary.
	Description() string

	// IsRunning reports whether the engine is running.
	IsRunning() bool
}

// VehicleInfo is the base vehicle. Car and Bike embed it and override
// StartEngine and Description.
type VehicleInfo struct {
	Brand string
	Model string
	Year  int

	running bool
}

// Ensure the variants implement Vehicle.
var (
	_ Vehicle = (*VehicleInfo)(nil)
	_ Vehicle = (*Car)(nil)
	_ Vehicle = (*Bike)(nil)
)

// NewVehicle creates a base vehicle that is not running.
func NewVehicle(brand, model string, year int) *VehicleInfo {
	return &VehicleInfo{Brand: brand, Model: model, Year: year}
}

// Kind returns "Vehicle".
func (v *VehicleInfo) Kind() string {
	return "Vehicle"
}

// StartEngine sets the running flag.
func (v *VehicleInfo) StartEngine() string {
	v.running = true
	return fmt.Sprintf("%s %s's engine is starting...", v.Brand, v.Model)
}

// StopEngine clears the running flag.
func (v *VehicleInfo) StopEngine() string {
	v.running = false
	return fmt.Sprintf("%s %s's engine is stopping...", v.Brand, v.Model)
}

// Description returns the base description.
func (v *VehicleInfo) Description() string {
	return fmt.Sprintf("This is a %d %s %s vehicle", v.Year, v.Brand, v.Model)
}

// IsRunning reports the running flag.
func (v *VehicleInfo) IsRunning() bool {
	return v.running
}

// Car is a vehicle with doors.
type Car struct {
	VehicleInfo
	Doors int
}

// NewCar creates a car that is not running.
func NewCar(brand, model string, year, doors int) *Car {
	return &Car{
		VehicleInfo: VehicleInfo{Brand: brand, Model: model, Year: year},
		Doors:       doors,
	}
}

// Kind returns "Car".
func (c *Car) Kind() string {
	return "Car"
}

// StartEngine overrides the base start message.
func (c *Car) StartEngine() string {
	c.running = true
	return fmt.Sprintf("%s %s's V6 engine roars to life!", c.Brand, c.Model)
}

// Description includes the door count.
func (c *Car) Description() string {
	return fmt.Sprintf("This is a %d %s %s car with %d doors", c.Year, c.Brand, c.Model, c.Doors)
}

// Bike is a motorcycle, optionally with a sidecar.
type Bike struct {
	VehicleInfo
	HasSidecar bool
}

// NewBike creates a bike that is not running.
func NewBike(brand, model string, year int, hasSidecar bool) *Bike {
	return &Bike{
		VehicleInfo: VehicleInfo{Brand: brand, Model: model, Year: year},
		HasSidecar:  hasSidecar,
	}
}

// Kind returns "Bike".
func (b *Bike) Kind() string {
	return "Bike"
}

// StartEngine overrides the base start message.
func (b *Bike) StartEngine() string {
	b.running = true
	return fmt.Sprintf("%s %s's motorcycle engine revs up!", b.Brand, b.Model)
}

// Description includes the sidecar status.
func (b *Bike) Description() string {
	sidecar := "without"
	if b.HasSidecar {
		sidecar = "with"
	}
	return fmt.Sprintf("This is a %d %s %s motorcycle %s a sidecar", b.Year, b.Brand, b.Model, sidecar)
}
