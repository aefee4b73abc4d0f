package phase

import (
	"testing"
	"time"

	clk "github.com/benbjohnson/clock"
	"go.viam.com/test"
)

func TestNewClockRejectsBadPeriod(t *testing.T) {
	_, err := NewClock(0, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "must be positive")

	_, err = NewClock(-time.Second, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestClockDefaultsToWallClock(t *testing.T) {
	c, err := NewClock(time.Hour, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Period(), test.ShouldEqual, time.Hour)
	test.That(t, c.Now().Value(), test.ShouldBeLessThan, NumPhases)
}

func TestClockAdvancesThroughCycle(t *testing.T) {
	mockClock := clk.NewMock()
	c, err := NewClock(12*time.Second, mockClock)
	test.That(t, err, test.ShouldBeNil)

	for i := 0; i < NumPhases; i++ {
		test.That(t, c.Now(), test.ShouldEqual, New(i))
		mockClock.Add(time.Second)
	}

	// A full period later the cycle starts over.
	test.That(t, c.Now(), test.ShouldEqual, New(0))
	mockClock.Add(500 * time.Millisecond)
	test.That(t, c.Now(), test.ShouldEqual, New(0))
	mockClock.Add(time.Second)
	test.That(t, c.Now(), test.ShouldEqual, New(1))
}

func TestClockAt(t *testing.T) {
	mockClock := clk.NewMock()
	c, err := NewClock(12*time.Minute, mockClock)
	test.That(t, err, test.ShouldBeNil)

	start := mockClock.Now()
	test.That(t, c.At(start), test.ShouldEqual, New(0))
	test.That(t, c.At(start.Add(time.Minute)), test.ShouldEqual, New(1))
	test.That(t, c.At(start.Add(11*time.Minute+59*time.Second)), test.ShouldEqual, New(11))
	test.That(t, c.At(start.Add(26*time.Minute)), test.ShouldEqual, New(2))

	// Times before the start of the cycle wrap backwards.
	test.That(t, c.At(start.Add(-time.Minute)), test.ShouldEqual, New(11))
	test.That(t, c.At(start.Add(-13*time.Minute)), test.ShouldEqual, New(11))
}

func TestClockProgress(t *testing.T) {
	mockClock := clk.NewMock()
	c, err := NewClock(12*time.Second, mockClock)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, c.Progress(), test.ShouldEqual, 0)
	mockClock.Add(500 * time.Millisecond)
	test.That(t, c.Progress(), test.ShouldAlmostEqual, 0.5)
	mockClock.Add(250 * time.Millisecond)
	test.That(t, c.Progress(), test.ShouldAlmostEqual, 0.75)

	// Progress resets at each phase boundary.
	mockClock.Add(250 * time.Millisecond)
	test.That(t, c.Now(), test.ShouldEqual, New(1))
	test.That(t, c.Progress(), test.ShouldEqual, 0)
}

func TestClockOffset(t *testing.T) {
	c, err := NewClock(12*time.Hour, nil)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, c.Offset(New(0)), test.ShouldEqual, time.Duration(0))
	test.That(t, c.Offset(New(1)), test.ShouldEqual, time.Hour)
	test.That(t, c.Offset(New(6)), test.ShouldEqual, 6*time.Hour)
	test.That(t, c.Offset(New(11)), test.ShouldEqual, 11*time.Hour)
}
