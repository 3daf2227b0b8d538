package garden

// Wallet holds the water balance. The balance never goes negative: a
// debit that would underflow clamps to zero, and a purchase either
// covers its full price or changes nothing.
type Wallet struct {
	balance int
}

// WaterPerTask is credited when a task is completed and debited when
// it is un-completed again.
const WaterPerTask = 10

func (w *Wallet) Balance() int { return w.balance }

func (w *Wallet) Credit(n int) {
	w.balance += n
}

func (w *Wallet) Debit(n int) {
	w.balance -= n
	if w.balance < 0 {
		w.balance = 0
	}
}

func (w *Wallet) CanAfford(price int) bool {
	return w.balance >= price
}

// Purchase debits price as one check-then-apply step. It reports false
// and leaves the balance untouched when the wallet cannot cover it.
func (w *Wallet) Purchase(price int) bool {
	if !w.CanAfford(price) {
		return false
	}
	w.balance -= price
	return true
}
