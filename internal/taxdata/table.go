package taxdata

import (
	"github.com/shopspring/decimal"

	"github.com/statax/statax/internal/domain"
)

// STATE TAX TABLE ASSUMPTIONS:
//
// 1. Rates and brackets are 2023 tax year values from published
//    Tax Foundation state individual income tax tables.
// 2. Washington's capital gains levy and New Hampshire's interest and
//    dividends tax do not touch wage income, so both are carried as
//    no-wage-tax states alongside Alaska, Florida, Nevada, South Dakota,
//    Tennessee, Texas and Wyoming.
// 3. States that implement the personal exemption as a small tax credit
//    rather than an income subtraction carry a zero exemption here.
// 4. Local/county income taxes (Maryland, Ohio, Pennsylvania locals) are
//    out of scope; state-level rates only.

func bracket(threshold int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Threshold: decimal.NewFromInt(threshold),
		Rate:      decimal.NewFromFloat(rate),
	}
}

func schedule(status domain.FilingStatus, standardDeduction, personalExemption int64, brackets ...domain.TaxBracket) domain.FilingStatusSchedule {
	return domain.FilingStatusSchedule{
		FilingStatus:      status,
		StandardDeduction: decimal.NewFromInt(standardDeduction),
		PersonalExemption: decimal.NewFromInt(personalExemption),
		Brackets:          brackets,
	}
}

// noWageTaxProfile builds a profile for a state with no tax on wage
// income: a single zero-rate bracket per schedule.
func noWageTaxProfile(name string) domain.StateTaxProfile {
	return domain.StateTaxProfile{
		Name:               name,
		DependentDeduction: decimal.Zero,
		Single:             schedule(domain.FilingSingle, 0, 0, bracket(0, 0)),
		Married:            schedule(domain.FilingMarried, 0, 0, bracket(0, 0)),
	}
}

// flatTaxProfile builds a profile for a single-rate state.
func flatTaxProfile(name string, rate float64, stdSingle, stdMarried, exSingle, exMarried, dependent int64) domain.StateTaxProfile {
	return domain.StateTaxProfile{
		Name:               name,
		DependentDeduction: decimal.NewFromInt(dependent),
		Single:             schedule(domain.FilingSingle, stdSingle, exSingle, bracket(0, rate)),
		Married:            schedule(domain.FilingMarried, stdMarried, exMarried, bracket(0, rate)),
	}
}

// stateProfiles returns the full 50-state table in canonical (alphabetical)
// insertion order.
func stateProfiles() []domain.StateTaxProfile {
	return []domain.StateTaxProfile{
		{
			Name:               "Alabama",
			DependentDeduction: decimal.NewFromInt(1000),
			Single: schedule(domain.FilingSingle, 3000, 1500,
				bracket(0, 0.02), bracket(500, 0.04), bracket(3000, 0.05)),
			Married: schedule(domain.FilingMarried, 8500, 3000,
				bracket(0, 0.02), bracket(1000, 0.04), bracket(6000, 0.05)),
		},
		noWageTaxProfile("Alaska"),
		flatTaxProfile("Arizona", 0.025, 13850, 27700, 0, 0, 100),
		{
			Name:               "Arkansas",
			DependentDeduction: decimal.Zero,
			Single: schedule(domain.FilingSingle, 2270, 0,
				bracket(0, 0.02), bracket(4300, 0.04), bracket(8500, 0.049)),
			Married: schedule(domain.FilingMarried, 4540, 0,
				bracket(0, 0.02), bracket(4300, 0.04), bracket(8500, 0.049)),
		},
		{
			Name:               "California",
			DependentDeduction: decimal.NewFromInt(446),
			Single: schedule(domain.FilingSingle, 5202, 144,
				bracket(0, 0.01), bracket(10099, 0.02), bracket(23942, 0.04),
				bracket(37788, 0.06), bracket(52455, 0.08), bracket(66295, 0.093),
				bracket(338639, 0.103), bracket(406364, 0.113), bracket(677275, 0.123)),
			Married: schedule(domain.FilingMarried, 10404, 288,
				bracket(0, 0.01), bracket(20198, 0.02), bracket(47884, 0.04),
				bracket(75576, 0.06), bracket(104910, 0.08), bracket(132590, 0.093),
				bracket(677278, 0.103), bracket(812728, 0.113), bracket(1354550, 0.123)),
		},
		flatTaxProfile("Colorado", 0.044, 13850, 27700, 0, 0, 0),
		{
			Name:               "Connecticut",
			DependentDeduction: decimal.Zero,
			Single: schedule(domain.FilingSingle, 0, 15000,
				bracket(0, 0.03), bracket(10000, 0.05), bracket(50000, 0.055),
				bracket(100000, 0.06), bracket(200000, 0.065), bracket(250000, 0.069),
				bracket(500000, 0.0699)),
			Married: schedule(domain.FilingMarried, 0, 24000,
				bracket(0, 0.03), bracket(20000, 0.05), bracket(100000, 0.055),
				bracket(200000, 0.06), bracket(400000, 0.065), bracket(500000, 0.069),
				bracket(1000000, 0.0699)),
		},
		{
			Name:               "Delaware",
			DependentDeduction: decimal.NewFromInt(110),
			Single: schedule(domain.FilingSingle, 3250, 110,
				bracket(0, 0), bracket(2000, 0.022), bracket(5000, 0.039),
				bracket(10000, 0.048), bracket(20000, 0.052), bracket(25000, 0.0555),
				bracket(60000, 0.066)),
			Married: schedule(domain.FilingMarried, 6500, 220,
				bracket(0, 0), bracket(2000, 0.022), bracket(5000, 0.039),
				bracket(10000, 0.048), bracket(20000, 0.052), bracket(25000, 0.0555),
				bracket(60000, 0.066)),
		},
		noWageTaxProfile("Florida"),
		{
			Name:               "Georgia",
			DependentDeduction: decimal.NewFromInt(3000),
			Single: schedule(domain.FilingSingle, 5400, 2700,
				bracket(0, 0.01), bracket(750, 0.02), bracket(2250, 0.03),
				bracket(3750, 0.04), bracket(5250, 0.05), bracket(7000, 0.0575)),
			Married: schedule(domain.FilingMarried, 7100, 7400,
				bracket(0, 0.01), bracket(1000, 0.02), bracket(3000, 0.03),
				bracket(5000, 0.04), bracket(7000, 0.05), bracket(10000, 0.0575)),
		},
		{
			Name:               "Hawaii",
			DependentDeduction: decimal.NewFromInt(1144),
			Single: schedule(domain.FilingSingle, 2200, 1144,
				bracket(0, 0.014), bracket(2400, 0.032), bracket(4800, 0.055),
				bracket(9600, 0.064), bracket(14400, 0.068), bracket(19200, 0.072),
				bracket(24000, 0.076), bracket(36000, 0.079), bracket(48000, 0.0825),
				bracket(150000, 0.09), bracket(175000, 0.10), bracket(200000, 0.11)),
			Married: schedule(domain.FilingMarried, 4400, 2288,
				bracket(0, 0.014), bracket(4800, 0.032), bracket(9600, 0.055),
				bracket(19200, 0.064), bracket(28800, 0.068), bracket(38400, 0.072),
				bracket(48000, 0.076), bracket(72000, 0.079), bracket(96000, 0.0825),
				bracket(300000, 0.09), bracket(350000, 0.10), bracket(400000, 0.11)),
		},
		flatTaxProfile("Idaho", 0.058, 13850, 27700, 0, 0, 0),
		flatTaxProfile("Illinois", 0.0495, 0, 0, 2425, 4850, 2425),
		flatTaxProfile("Indiana", 0.0315, 0, 0, 1000, 2000, 1000),
		{
			Name:               "Iowa",
			DependentDeduction: decimal.NewFromInt(40),
			Single: schedule(domain.FilingSingle, 0, 40,
				bracket(0, 0.044), bracket(6000, 0.0482), bracket(30000, 0.057),
				bracket(75000, 0.06)),
			Married: schedule(domain.FilingMarried, 0, 80,
				bracket(0, 0.044), bracket(12000, 0.0482), bracket(60000, 0.057),
				bracket(150000, 0.06)),
		},
		{
			Name:               "Kansas",
			DependentDeduction: decimal.NewFromInt(2250),
			Single: schedule(domain.FilingSingle, 3500, 2250,
				bracket(0, 0.031), bracket(15000, 0.0525), bracket(30000, 0.057)),
			Married: schedule(domain.FilingMarried, 8000, 4500,
				bracket(0, 0.031), bracket(30000, 0.0525), bracket(60000, 0.057)),
		},
		flatTaxProfile("Kentucky", 0.045, 2980, 5960, 0, 0, 0),
		{
			Name:               "Louisiana",
			DependentDeduction: decimal.NewFromInt(1000),
			Single: schedule(domain.FilingSingle, 0, 4500,
				bracket(0, 0.0185), bracket(12500, 0.035), bracket(50000, 0.0425)),
			Married: schedule(domain.FilingMarried, 0, 9000,
				bracket(0, 0.0185), bracket(25000, 0.035), bracket(100000, 0.0425)),
		},
		{
			Name:               "Maine",
			DependentDeduction: decimal.NewFromInt(300),
			Single: schedule(domain.FilingSingle, 13850, 4700,
				bracket(0, 0.058), bracket(24500, 0.0675), bracket(58050, 0.0715)),
			Married: schedule(domain.FilingMarried, 27700, 9400,
				bracket(0, 0.058), bracket(49050, 0.0675), bracket(116100, 0.0715)),
		},
		{
			Name:               "Maryland",
			DependentDeduction: decimal.NewFromInt(3200),
			Single: schedule(domain.FilingSingle, 2550, 3200,
				bracket(0, 0.02), bracket(1000, 0.03), bracket(2000, 0.04),
				bracket(3000, 0.0475), bracket(100000, 0.05), bracket(125000, 0.0525),
				bracket(150000, 0.055), bracket(250000, 0.0575)),
			Married: schedule(domain.FilingMarried, 5150, 6400,
				bracket(0, 0.02), bracket(1000, 0.03), bracket(2000, 0.04),
				bracket(3000, 0.0475), bracket(150000, 0.05), bracket(175000, 0.0525),
				bracket(225000, 0.055), bracket(300000, 0.0575)),
		},
		{
			Name:               "Massachusetts",
			DependentDeduction: decimal.NewFromInt(1000),
			Single: schedule(domain.FilingSingle, 0, 4400,
				bracket(0, 0.05), bracket(1000000, 0.09)),
			Married: schedule(domain.FilingMarried, 0, 8800,
				bracket(0, 0.05), bracket(1000000, 0.09)),
		},
		flatTaxProfile("Michigan", 0.0425, 0, 0, 5400, 10800, 5400),
		{
			Name:               "Minnesota",
			DependentDeduction: decimal.NewFromInt(4800),
			Single: schedule(domain.FilingSingle, 13825, 0,
				bracket(0, 0.0535), bracket(30070, 0.068), bracket(98760, 0.0785),
				bracket(183340, 0.0985)),
			Married: schedule(domain.FilingMarried, 27650, 0,
				bracket(0, 0.0535), bracket(43950, 0.068), bracket(174610, 0.0785),
				bracket(304970, 0.0985)),
		},
		{
			Name:               "Mississippi",
			DependentDeduction: decimal.NewFromInt(1500),
			Single: schedule(domain.FilingSingle, 2300, 6000,
				bracket(0, 0), bracket(10000, 0.05)),
			Married: schedule(domain.FilingMarried, 4600, 12000,
				bracket(0, 0), bracket(10000, 0.05)),
		},
		{
			Name:               "Missouri",
			DependentDeduction: decimal.Zero,
			Single: schedule(domain.FilingSingle, 13850, 0,
				bracket(0, 0), bracket(1207, 0.015), bracket(2414, 0.02),
				bracket(3621, 0.025), bracket(4828, 0.03), bracket(6035, 0.035),
				bracket(7242, 0.04), bracket(8449, 0.045), bracket(9656, 0.0495)),
			Married: schedule(domain.FilingMarried, 27700, 0,
				bracket(0, 0), bracket(1207, 0.015), bracket(2414, 0.02),
				bracket(3621, 0.025), bracket(4828, 0.03), bracket(6035, 0.035),
				bracket(7242, 0.04), bracket(8449, 0.045), bracket(9656, 0.0495)),
		},
		{
			Name:               "Montana",
			DependentDeduction: decimal.NewFromInt(2960),
			Single: schedule(domain.FilingSingle, 5540, 2960,
				bracket(0, 0.01), bracket(3600, 0.02), bracket(6300, 0.03),
				bracket(9700, 0.04), bracket(13000, 0.05), bracket(16800, 0.06),
				bracket(21600, 0.0675)),
			Married: schedule(domain.FilingMarried, 11080, 5920,
				bracket(0, 0.01), bracket(3600, 0.02), bracket(6300, 0.03),
				bracket(9700, 0.04), bracket(13000, 0.05), bracket(16800, 0.06),
				bracket(21600, 0.0675)),
		},
		{
			Name:               "Nebraska",
			DependentDeduction: decimal.Zero,
			Single: schedule(domain.FilingSingle, 7900, 0,
				bracket(0, 0.0246), bracket(3700, 0.0351), bracket(22170, 0.0501),
				bracket(35730, 0.0664)),
			Married: schedule(domain.FilingMarried, 15800, 0,
				bracket(0, 0.0246), bracket(7390, 0.0351), bracket(44430, 0.0501),
				bracket(71320, 0.0664)),
		},
		noWageTaxProfile("Nevada"),
		noWageTaxProfile("New Hampshire"),
		{
			Name:               "New Jersey",
			DependentDeduction: decimal.NewFromInt(1500),
			Single: schedule(domain.FilingSingle, 0, 1000,
				bracket(0, 0.014), bracket(20000, 0.0175), bracket(35000, 0.035),
				bracket(40000, 0.05525), bracket(75000, 0.0637), bracket(500000, 0.0897),
				bracket(1000000, 0.1075)),
			Married: schedule(domain.FilingMarried, 0, 2000,
				bracket(0, 0.014), bracket(20000, 0.0175), bracket(50000, 0.0245),
				bracket(70000, 0.035), bracket(80000, 0.05525), bracket(150000, 0.0637),
				bracket(500000, 0.0897), bracket(1000000, 0.1075)),
		},
		{
			Name:               "New Mexico",
			DependentDeduction: decimal.Zero,
			Single: schedule(domain.FilingSingle, 13850, 0,
				bracket(0, 0.017), bracket(5500, 0.032), bracket(11000, 0.047),
				bracket(16000, 0.049), bracket(210000, 0.059)),
			Married: schedule(domain.FilingMarried, 27700, 0,
				bracket(0, 0.017), bracket(8000, 0.032), bracket(16000, 0.047),
				bracket(24000, 0.049), bracket(315000, 0.059)),
		},
		{
			Name:               "New York",
			DependentDeduction: decimal.NewFromInt(1000),
			Single: schedule(domain.FilingSingle, 8000, 0,
				bracket(0, 0.04), bracket(8500, 0.045), bracket(11700, 0.0525),
				bracket(13900, 0.055), bracket(80650, 0.06), bracket(215400, 0.0685),
				bracket(1077550, 0.0965), bracket(5000000, 0.103), bracket(25000000, 0.109)),
			Married: schedule(domain.FilingMarried, 16050, 0,
				bracket(0, 0.04), bracket(17150, 0.045), bracket(23600, 0.0525),
				bracket(27900, 0.055), bracket(161550, 0.06), bracket(323200, 0.0685),
				bracket(2155350, 0.0965), bracket(5000000, 0.103), bracket(25000000, 0.109)),
		},
		flatTaxProfile("North Carolina", 0.0475, 12750, 25500, 0, 0, 0),
		{
			Name:               "North Dakota",
			DependentDeduction: decimal.Zero,
			Single: schedule(domain.FilingSingle, 13850, 0,
				bracket(0, 0), bracket(44725, 0.0195), bracket(225975, 0.025)),
			Married: schedule(domain.FilingMarried, 27700, 0,
				bracket(0, 0), bracket(74750, 0.0195), bracket(275100, 0.025)),
		},
		{
			Name:               "Ohio",
			DependentDeduction: decimal.NewFromInt(2400),
			Single: schedule(domain.FilingSingle, 0, 2400,
				bracket(0, 0), bracket(26050, 0.02765), bracket(46100, 0.03226),
				bracket(92150, 0.03688), bracket(115300, 0.0399)),
			Married: schedule(domain.FilingMarried, 0, 4800,
				bracket(0, 0), bracket(26050, 0.02765), bracket(46100, 0.03226),
				bracket(92150, 0.03688), bracket(115300, 0.0399)),
		},
		{
			Name:               "Oklahoma",
			DependentDeduction: decimal.NewFromInt(1000),
			Single: schedule(domain.FilingSingle, 6350, 1000,
				bracket(0, 0.0025), bracket(1000, 0.0075), bracket(2500, 0.0175),
				bracket(3750, 0.0275), bracket(4900, 0.0375), bracket(7200, 0.0475)),
			Married: schedule(domain.FilingMarried, 12700, 2000,
				bracket(0, 0.0025), bracket(2000, 0.0075), bracket(5000, 0.0175),
				bracket(7500, 0.0275), bracket(9800, 0.0375), bracket(12200, 0.0475)),
		},
		{
			Name:               "Oregon",
			DependentDeduction: decimal.Zero,
			Single: schedule(domain.FilingSingle, 2605, 0,
				bracket(0, 0.0475), bracket(4050, 0.0675), bracket(10200, 0.0875),
				bracket(125000, 0.099)),
			Married: schedule(domain.FilingMarried, 5210, 0,
				bracket(0, 0.0475), bracket(8100, 0.0675), bracket(20400, 0.0875),
				bracket(250000, 0.099)),
		},
		flatTaxProfile("Pennsylvania", 0.0307, 0, 0, 0, 0, 0),
		{
			Name:               "Rhode Island",
			DependentDeduction: decimal.NewFromInt(4700),
			Single: schedule(domain.FilingSingle, 10000, 4700,
				bracket(0, 0.0375), bracket(73450, 0.0475), bracket(166950, 0.0599)),
			Married: schedule(domain.FilingMarried, 20050, 9400,
				bracket(0, 0.0375), bracket(73450, 0.0475), bracket(166950, 0.0599)),
		},
		{
			Name:               "South Carolina",
			DependentDeduction: decimal.Zero,
			Single: schedule(domain.FilingSingle, 13850, 0,
				bracket(0, 0), bracket(3200, 0.03), bracket(16040, 0.065)),
			Married: schedule(domain.FilingMarried, 27700, 0,
				bracket(0, 0), bracket(3200, 0.03), bracket(16040, 0.065)),
		},
		noWageTaxProfile("South Dakota"),
		noWageTaxProfile("Tennessee"),
		noWageTaxProfile("Texas"),
		flatTaxProfile("Utah", 0.0465, 0, 0, 0, 0, 0),
		{
			Name:               "Vermont",
			DependentDeduction: decimal.NewFromInt(4500),
			Single: schedule(domain.FilingSingle, 6500, 4500,
				bracket(0, 0.0335), bracket(42150, 0.066), bracket(102200, 0.076),
				bracket(213150, 0.0875)),
			Married: schedule(domain.FilingMarried, 13050, 9000,
				bracket(0, 0.0335), bracket(70450, 0.066), bracket(170300, 0.076),
				bracket(259500, 0.0875)),
		},
		{
			Name:               "Virginia",
			DependentDeduction: decimal.NewFromInt(930),
			Single: schedule(domain.FilingSingle, 8000, 930,
				bracket(0, 0.02), bracket(3000, 0.03), bracket(5000, 0.05),
				bracket(17000, 0.0575)),
			Married: schedule(domain.FilingMarried, 16000, 1860,
				bracket(0, 0.02), bracket(3000, 0.03), bracket(5000, 0.05),
				bracket(17000, 0.0575)),
		},
		noWageTaxProfile("Washington"),
		{
			Name:               "West Virginia",
			DependentDeduction: decimal.NewFromInt(2000),
			Single: schedule(domain.FilingSingle, 0, 2000,
				bracket(0, 0.0236), bracket(10000, 0.0315), bracket(25000, 0.0354),
				bracket(40000, 0.0472), bracket(60000, 0.0512)),
			Married: schedule(domain.FilingMarried, 0, 4000,
				bracket(0, 0.0236), bracket(10000, 0.0315), bracket(25000, 0.0354),
				bracket(40000, 0.0472), bracket(60000, 0.0512)),
		},
		{
			Name:               "Wisconsin",
			DependentDeduction: decimal.NewFromInt(700),
			Single: schedule(domain.FilingSingle, 11790, 700,
				bracket(0, 0.0354), bracket(13810, 0.0465), bracket(27630, 0.053),
				bracket(304170, 0.0765)),
			Married: schedule(domain.FilingMarried, 21820, 1400,
				bracket(0, 0.0354), bracket(18420, 0.0465), bracket(36840, 0.053),
				bracket(405550, 0.0765)),
		},
		noWageTaxProfile("Wyoming"),
	}
}
