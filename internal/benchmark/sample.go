package benchmark

// Built-in fallback tables used when no data files can be loaded. They are
// small but cover the common office-visit, lab, and imaging codes plus a
// handful of CGHS/PMJAY procedures, so a degraded deployment still audits
// sensibly.

var sampleICD10 = map[string]CodeEntry{
	"A00":   {Description: "Cholera", Category: "Infectious"},
	"E11.9": {Description: "Type 2 diabetes mellitus without complications", Category: "Endocrine"},
	"I10":   {Description: "Essential (primary) hypertension", Category: "Circulatory"},
	"J06.9": {Description: "Acute upper respiratory infection, unspecified", Category: "Respiratory"},
	"K21.9": {Description: "Gastro-esophageal reflux disease without esophagitis", Category: "Digestive"},
	"M54.5": {Description: "Low back pain", Category: "Musculoskeletal"},
	"R51":   {Description: "Headache", Category: "Symptoms"},
	"Z00.0": {Description: "General adult medical examination", Category: "Factors"},
}

var sampleCPT = map[string]CodeEntry{
	"99211": {Description: "Office visit, minimal", Category: "E/M", RVU: 0.18, FairPrice: 30},
	"99212": {Description: "Office visit, straightforward", Category: "E/M", RVU: 0.93, FairPrice: 65},
	"99213": {Description: "Office visit, low complexity", Category: "E/M", RVU: 1.30, FairPrice: 110},
	"99214": {Description: "Office visit, moderate complexity", Category: "E/M", RVU: 1.92, FairPrice: 165},
	"99215": {Description: "Office visit, high complexity", Category: "E/M", RVU: 2.80, FairPrice: 240},
	"80048": {Description: "Basic metabolic panel", Category: "Lab", FairPrice: 25},
	"80053": {Description: "Comprehensive metabolic panel", Category: "Lab", FairPrice: 65},
	"80061": {Description: "Lipid panel", Category: "Lab", FairPrice: 40},
	"81001": {Description: "Urinalysis, automated", Category: "Lab", FairPrice: 12},
	"85025": {Description: "Complete blood count (CBC)", Category: "Lab", FairPrice: 35},
	"87880": {Description: "Strep test, rapid", Category: "Lab", FairPrice: 25},
	"70553": {Description: "MRI brain with/without contrast", Category: "Imaging", RVU: 3.50, FairPrice: 1500},
	"71046": {Description: "Chest X-ray, 2 views", Category: "Imaging", RVU: 0.22, FairPrice: 75},
	"72148": {Description: "MRI lumbar spine without contrast", Category: "Imaging", RVU: 1.54, FairPrice: 1200},
	"74177": {Description: "CT abdomen/pelvis with contrast", Category: "Imaging", RVU: 3.20, FairPrice: 800},
	"93000": {Description: "Electrocardiogram (ECG/EKG)", Category: "Cardiology", RVU: 0.17, FairPrice: 50},
	"27447": {Description: "Total knee replacement", Category: "Surgery", RVU: 20.79, FairPrice: 25000},
	"45380": {Description: "Colonoscopy with biopsy", Category: "Surgery", RVU: 4.43, FairPrice: 2000},
	"J1885": {Description: "Ketorolac tromethamine injection, 15 mg", Category: "Drugs", FairPrice: 8},
}

var sampleFees = map[string]FeeEntry{
	"99213": {RVU: 1.30, NationalPayment: 110},
	"99214": {RVU: 1.92, NationalPayment: 165},
	"99215": {RVU: 2.80, NationalPayment: 240},
	"85025": {NationalPayment: 35},
	"80053": {NationalPayment: 65},
	"71046": {RVU: 0.22, NationalPayment: 75},
	"70553": {RVU: 3.50, NationalPayment: 1500},
	"93000": {RVU: 0.17, NationalPayment: 50},
}

var sampleProcedures = []*Procedure{
	{Key: "consultations_general_opd", Name: "general_opd", Description: "General OPD Consultation", Category: "consultations", Source: "cghs", CGHSRate: 350},
	{Key: "consultations_specialist", Name: "specialist", Description: "Specialist Consultation", Category: "consultations", Source: "cghs", CGHSRate: 700},
	{Key: "diagnostics_cbc", Name: "cbc", Description: "Complete Blood Count (CBC)", Category: "diagnostics", Source: "cghs", CGHSRate: 110},
	{Key: "diagnostics_ct_abdomen", Name: "ct_abdomen", Description: "CT Scan Abdomen with Contrast", Category: "diagnostics", Source: "cghs", CGHSRate: 3500, MaxPrivate: 9000},
	{Key: "diagnostics_mri_brain", Name: "mri_brain", Description: "MRI Brain", Category: "diagnostics", Source: "cghs", CGHSRate: 5000, MaxPrivate: 14000},
	{Key: "surgical_lap_chole", Name: "lap_chole", Description: "Laparoscopic Cholecystectomy", Category: "surgical", Source: "cghs+pmjay", CGHSRate: 23100, PMJAYRate: 27000},
	{Key: "surgical_appendectomy", Name: "appendectomy", Description: "Appendectomy", Category: "surgical", Source: "cghs+pmjay", CGHSRate: 17250, PMJAYRate: 20000},
	{Key: "pmjay_cardiac_angioplasty", Name: "angioplasty", Description: "Coronary Angioplasty with Stent", Category: "cardiac", Source: "pmjay", PMJAYRate: 65000},
	{Key: "pmjay_ortho_tkr", Name: "total_knee_replacement", Description: "Total Knee Replacement", Category: "orthopaedics", Source: "pmjay", PMJAYRate: 90000},
	{Key: "ward_icu_day", Name: "icu_day", Description: "ICU Room Charges per day", Category: "ward", Source: "cghs", CGHSRate: 5400},
}

func (s *Store) loadUSSample() {
	s.icd10 = sampleICD10
	s.cpt = sampleCPT
	s.fees = sampleFees
	s.usSample = true
}

func (s *Store) loadIndiaSample() {
	for _, p := range sampleProcedures {
		cp := *p
		s.appendProcedure(&cp)
	}
	s.indiaSample = true
}
