package engine

// SmallMie computes the scattering table for a sphere in the small-particle
// limit, using the analytic low-x expansions of Bohren & Huffman for the
// three leading coefficients â₁, b̂₁, â₂. The perfect-conductor and
// dielectric branches use different denominators. The expansion carries the
// x² and x⁴ correction terms, so it stays accurate up to the x·|m| ≈ 0.1
// handover point of the full series.
func SmallMie(x float64, m complex128, mu []float64, sm *SMatrix) (qsca, g float64) {
	m2 := m * m
	m4 := m2 * m2
	x2 := x * x
	x3 := x2 * x
	x4 := x2 * x2

	// z0 = i·(m² − 1)
	z0 := complex(-imag(m2), real(m2)-1)

	var ahat1, bhat1, ahat2 complex128

	if real(m) == 0 {
		// Perfect conductor.
		ahat1 = complex(0, 2.0/3.0*(1-0.2*x2)) / complex(1-0.5*x2, 2.0/3.0*x3)
		bhat1 = complex(0, -(1-0.1*x2)/3) / complex(1+0.5*x2, -x3/3)
		ahat2 = complex(0, x2/30)
	} else {
		z1 := complex(2.0/3.0, 0) * z0
		z2 := complex(1-0.1*x2+(4*real(m2)+5)*x4/1400, 4*x4*imag(m2)/1400)
		z4 := complex(x3*(1-0.1*x2), 0) * z1
		den1 := complex(
			2+real(m2)+(1-0.7*real(m2))*x2+(8*real(m4)-385*real(m2)+350)/1400*x4+real(z4),
			-0.7*imag(m2)*x2+(8*imag(m4)-385*imag(m2))/1400*x4+imag(z4),
		)
		ahat1 = z1 * z2 / den1

		z5 := complex(x2/45, 0) * z0
		z6 := complex(1+(2*real(m2)-5)*x2/70, imag(m2)*x2/35)
		z7 := complex(1-(2*real(m2)-5)*x2/30, -imag(m2)*x2/15)
		bhat1 = z5 * (z6 / z7)

		z8 := complex((1-x2/14)*x2/15, 0) * z0
		den2 := complex(2*real(m2)+3-(real(m2)/7-0.5)*x2, 2*imag(m2)-imag(m2)/7*x2)
		ahat2 = z8 / den2
	}

	t := abs2(ahat1) + abs2(bhat1) + 5.0/3.0*abs2(ahat2)
	qsca = 6 * x4 * t
	g = (real(ahat1)*(real(ahat2)+real(bhat1)) +
		imag(ahat1)*(imag(ahat2)+imag(bhat1))) / t

	// Scale the coefficients into scattering amplitudes.
	scale := complex(1.5*x3, 0)
	ahat1 *= scale
	bhat1 *= scale
	ahat2 *= scale * complex(5.0/3.0, 0)

	for j, muj := range mu {
		s1 := ahat1 + (bhat1+ahat2)*complex(muj, 0)
		s2 := bhat1 + (ahat1+ahat2)*complex(2*muj*muj-1, 0)
		sm.setRow(j, s1, s2)
	}
	return qsca, g
}

// abs2 returns |z|² without the square root.
func abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
