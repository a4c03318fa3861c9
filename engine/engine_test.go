package engine

// Shared fixtures for the engine tests.

func rec(age, gpa, study float64) StudentRecord {
	return StudentRecord{Age: age, GPA: gpa, StudyTimeWeekly: study}
}

// sampleStudents is a small dataset covering every filter dimension.
var sampleStudents = []StudentRecord{
	{Age: 16, GPA: 3.8, StudyTimeWeekly: 18, ParentalEducation: 3, ParentalSupport: 4, Gender: 0, Tutoring: 1, Extracurricular: 1},
	{Age: 17, GPA: 2.1, StudyTimeWeekly: 6, ParentalEducation: 1, ParentalSupport: 2, Gender: 1, Tutoring: 0, Extracurricular: 0},
	{Age: 17, GPA: 3.1, StudyTimeWeekly: 12, ParentalEducation: 2, ParentalSupport: 3, Gender: 0, Tutoring: 1, Extracurricular: 0},
	{Age: 18, GPA: 0.9, StudyTimeWeekly: 2, ParentalEducation: 0, ParentalSupport: 1, Gender: 1, Tutoring: 0, Extracurricular: 1},
	{Age: 15, GPA: 4.0, StudyTimeWeekly: 19.5, ParentalEducation: 4, ParentalSupport: 4, Gender: 1, Tutoring: 1, Extracurricular: 1},
	{Age: 16, GPA: 1.5, StudyTimeWeekly: 4, ParentalEducation: 2, ParentalSupport: 0, Gender: 0, Tutoring: 0, Extracurricular: 0},
}
