package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBloodPriorityRead_State(t *testing.T) {
	now := time.Now()
	later := now.Add(15 * time.Second)

	var missing *BloodPriorityRead
	assert.Equal(t, ReadStateUnopened, missing.State())
	assert.Equal(t, ReadStateUnopened, (&BloodPriorityRead{}).State())
	assert.Equal(t, ReadStateOpened, (&BloodPriorityRead{OpenedAt: &now}).State())
	assert.Equal(t, ReadStateConfirmed, (&BloodPriorityRead{OpenedAt: &now, ConfirmedAt: &later}).State())
}

func TestBloodPriorityRead_DwellRemaining(t *testing.T) {
	opened := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	read := &BloodPriorityRead{OpenedAt: &opened, MinTimerSeconds: 10}

	assert.Equal(t, 10*time.Second, read.DwellRemaining(opened))
	assert.Equal(t, 4*time.Second, read.DwellRemaining(opened.Add(6*time.Second)))
	assert.Zero(t, read.DwellRemaining(opened.Add(10*time.Second)))
	assert.Zero(t, read.DwellRemaining(opened.Add(time.Minute)))

	confirmed := opened.Add(11 * time.Second)
	read.ConfirmedAt = &confirmed
	assert.Zero(t, read.DwellRemaining(opened))
}

func TestBloodPriorityRead_MinDwellDefaults(t *testing.T) {
	read := &BloodPriorityRead{}

	assert.Equal(t, DefaultMinTimerSeconds*time.Second, read.MinDwell())
}
