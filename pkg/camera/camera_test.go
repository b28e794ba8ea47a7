package camera

import (
	"errors"
	"sync"
	"testing"
)

func TestParseEnums(t *testing.T) {
	t.Run("TriggerMode", func(t *testing.T) {
		for _, name := range TriggerModeValues {
			m, err := ParseTriggerMode(name)
			if err != nil {
				t.Fatalf("ParseTriggerMode(%q) failed: %v", name, err)
			}
			if m.String() != name {
				t.Errorf("round trip %q -> %q", name, m.String())
			}
		}
		m, err := ParseTriggerMode("global")
		if err != nil || m != TriggerGlobal {
			t.Errorf("ParseTriggerMode(global) = %v, %v", m, err)
		}
		if _, err := ParseTriggerMode("SOFTWARE"); err == nil {
			t.Error("expected error for SOFTWARE")
		}
	})

	t.Run("TriggerEdge", func(t *testing.T) {
		e, err := ParseTriggerEdge("Falling")
		if err != nil || e != EdgeFalling {
			t.Errorf("ParseTriggerEdge(Falling) = %v, %v", e, err)
		}
		if _, err := ParseTriggerEdge("both"); err == nil {
			t.Error("expected error for both")
		}
	})

	t.Run("Gain", func(t *testing.T) {
		for i, name := range GainValues {
			g, err := ParseGain(name)
			if err != nil {
				t.Fatalf("ParseGain(%q) failed: %v", name, err)
			}
			if int(g) != i {
				t.Errorf("gain %s = %d, want %d", name, g, i)
			}
		}
		if Gain(7).Valid() {
			t.Error("gain 7 must be invalid")
		}
	})

	t.Run("TestImage", func(t *testing.T) {
		img, err := ParseTestImage("testimage_3")
		if err != nil || img != TestImage3 {
			t.Errorf("ParseTestImage(testimage_3) = %v, %v", img, err)
		}
		if TestImage(42).String() != "UNKNOWN" {
			t.Errorf("expected UNKNOWN, got %s", TestImage(42))
		}
	})
}

func TestSimulatorTemperatureTarget(t *testing.T) {
	sim := NewSimulator(Config{TimerPeriodMS: 10})

	tests := []struct {
		name    string
		target  float64
		wantErr bool
	}{
		{"cooling", -10, false},
		{"lower bound", -50, false},
		{"upper bound", 50, false},
		{"too cold", -51, true},
		{"too hot", 51, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sim.SetTemperatureTarget(tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetTemperatureTarget(%v) error = %v, wantErr %v", tt.target, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("expected ErrOutOfRange, got %v", err)
				}
				return
			}
			got, _ := sim.TemperatureTarget()
			if got != tt.target {
				t.Errorf("TemperatureTarget() = %v, want %v", got, tt.target)
			}
			temp, _ := sim.Temperature()
			if temp != tt.target {
				t.Errorf("Temperature() = %v, want %v", temp, tt.target)
			}
		})
	}
}

func TestSimulatorDefaults(t *testing.T) {
	sim := NewSimulator(Config{})

	temp, _ := sim.Temperature()
	if temp != SimAmbientTemperature {
		t.Errorf("expected ambient temperature, got %v", temp)
	}
	mode, _ := sim.TriggerMode()
	if mode != TriggerStandard {
		t.Errorf("expected STANDARD, got %s", mode)
	}
	edge, _ := sim.TriggerEdge()
	if edge != EdgeRising {
		t.Errorf("expected RISING, got %s", edge)
	}
	img, _ := sim.TestImageSelector()
	if img != TestImageOff {
		t.Errorf("expected TESTIMAGE_OFF, got %s", img)
	}
	status, _ := sim.Status()
	if status != StatusReady {
		t.Errorf("expected Ready, got %s", status)
	}
}

func TestSimulatorSetters(t *testing.T) {
	sim := NewSimulator(Config{})

	t.Run("FanSpeed", func(t *testing.T) {
		if err := sim.SetFanSpeed(1); err != nil {
			t.Fatalf("SetFanSpeed failed: %v", err)
		}
		speed, _ := sim.FanSpeed()
		if speed != 1 {
			t.Errorf("expected gear 1, got %d", speed)
		}
		if err := sim.SetFanSpeed(SimFanGearMax + 1); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})

	t.Run("Gain", func(t *testing.T) {
		if err := sim.SetGlobalGain(GainLow); err != nil {
			t.Fatalf("SetGlobalGain failed: %v", err)
		}
		g, _ := sim.GlobalGain()
		if g != GainLow {
			t.Errorf("expected LOW, got %s", g)
		}
		if err := sim.SetGlobalGain(Gain(9)); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})

	t.Run("Trigger", func(t *testing.T) {
		if err := sim.SetTriggerMode(TriggerSynchronous); err != nil {
			t.Fatalf("SetTriggerMode failed: %v", err)
		}
		if err := sim.SetTriggerEdge(EdgeFalling); err != nil {
			t.Fatalf("SetTriggerEdge failed: %v", err)
		}
		m, _ := sim.TriggerMode()
		e, _ := sim.TriggerEdge()
		if m != TriggerSynchronous || e != EdgeFalling {
			t.Errorf("got %s/%s", m, e)
		}
	})

	t.Run("TestImage", func(t *testing.T) {
		if err := sim.SetTestImageSelector(TestImage5); err != nil {
			t.Fatalf("SetTestImageSelector failed: %v", err)
		}
		if err := sim.SetTestImageSelector(TestImage(6)); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})
}

func TestSimulatorBufferStatistics(t *testing.T) {
	sim := NewSimulator(Config{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sim.RecordFrame(i%5 != 0)
		}(i)
	}
	wg.Wait()

	total, _ := sim.StatisticsTotalBufferCount()
	failed, _ := sim.StatisticsFailedBufferCount()
	if total != 10 {
		t.Errorf("expected 10 total buffers, got %d", total)
	}
	if failed != 2 {
		t.Errorf("expected 2 failed buffers, got %d", failed)
	}
}

func TestSimulatorFactory(t *testing.T) {
	cam, err := SimulatorFactory(Config{TimerPeriodMS: 123})
	if err != nil {
		t.Fatalf("SimulatorFactory failed: %v", err)
	}
	sim := cam.(*Simulator)
	if sim.Config().TimerPeriodMS != 123 {
		t.Errorf("expected timer 123, got %d", sim.Config().TimerPeriodMS)
	}

	if _, err := SimulatorFactory(Config{TimerPeriodMS: -1}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestInterface(t *testing.T) {
	if _, err := NewInterface(nil); !errors.Is(err, ErrNilCamera) {
		t.Errorf("expected ErrNilCamera, got %v", err)
	}

	sim := NewSimulator(Config{})
	iface, err := NewInterface(sim)
	if err != nil {
		t.Fatalf("NewInterface failed: %v", err)
	}
	if iface.Camera() != Camera(sim) {
		t.Error("Interface must wrap the given camera")
	}

	info, err := iface.DetectorInfo()
	if err != nil {
		t.Fatalf("DetectorInfo failed: %v", err)
	}
	if info.Type != DetectorType || info.Model != SimDetectorModel {
		t.Errorf("unexpected detector %+v", info)
	}
	if info.ImageSize.Width != 2048 || info.ImageSize.Height != 2048 {
		t.Errorf("unexpected image size %+v", info.ImageSize)
	}

	sim.SetStatus(StatusExposure)
	status, _ := iface.Status()
	if status != StatusExposure {
		t.Errorf("expected Exposure, got %s", status)
	}
}
