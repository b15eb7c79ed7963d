package game

// Battery is the device charge in percent.
type Battery struct {
	level float64
}

// Level returns the charge in percent, never below zero.
func (b *Battery) Level() float64 {
	return b.level
}

// Drain removes percent from the charge. It reports true once the charge
// has gone below zero; the level is then clamped to zero.
func (b *Battery) Drain(percent float64) (depleted bool) {
	b.level -= percent
	if b.level < 0 {
		b.level = 0
		return true
	}
	return false
}

// Wallet is the player's money. It satisfies wifi.Payer.
type Wallet struct {
	balance int
	spent   int
}

// Balance returns the money left.
func (w *Wallet) Balance() int {
	return w.balance
}

// Deduct takes amount out of the wallet.
func (w *Wallet) Deduct(amount int) {
	w.balance -= amount
	w.spent += amount
}

// Spent returns the total paid for networks so far.
func (w *Wallet) Spent() int {
	return w.spent
}

// Goal tracks the data still to be moved, in MiB.
type Goal struct {
	download float64
	upload   float64
}

// Remaining returns the outstanding download and upload in MiB.
func (g *Goal) Remaining() (download, upload float64) {
	return g.download, g.upload
}

// Transfer subtracts the given amounts, clamping each side at zero.
func (g *Goal) Transfer(download, upload float64) {
	g.download -= download
	g.upload -= upload
	if g.download < 0 {
		g.download = 0
	}
	if g.upload < 0 {
		g.upload = 0
	}
}

// Complete reports whether both quotas are done.
func (g *Goal) Complete() bool {
	return g.download == 0 && g.upload == 0
}
