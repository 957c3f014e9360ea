// Package ctfft computes the discrete Fourier transform of complex signals
// with the recursive radix-2 Cooley-Tukey algorithm.
//
// The transform is unitary: the DFT coefficients are scaled by 1/sqrt(n), so
// the signal energy is preserved. Signal lengths must be exact powers of two.
//
// The one-shot entry point transforms a signal in place with the reference
// recursion:
//
//	sig := ctfft.Signal{{Real: 1}, {Real: 1}, {Real: 1}, {Real: 1}}
//	if err := ctfft.Transform(sig); err != nil {
//	    // len(sig) is not a power of two
//	}
//	// sig == {{2, 0}, {0, 0}, {0, 0}, {0, 0}}
//
// Repeated transforms of one size should go through a Plan, which validates
// the size once and keeps the scratch state of its strategy:
//
//	plan, err := ctfft.NewPlan(1<<16, ctfft.WithStrategy(ctfft.StrategyScratch))
//	...
//	err = plan.Transform(sig)
package ctfft
