package chamber

// SaveSize returns the size of the persisted state in bytes.
func (c *Chamber) SaveSize() int {
	return SaveSize
}

// Save copies the ball count into the save buffer.
func (c *Chamber) Save() {
	c.mustInit()
	c.save[0] = c.state.NumBalls
}

// Load copies the save buffer back into the ball count.
func (c *Chamber) Load() {
	c.mustInit()
	c.state.NumBalls = c.save[0]
	c.logger.Debug("chamber state loaded", "num_balls", c.state.NumBalls)
}
