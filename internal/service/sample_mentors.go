package service

import "lifemap/internal/domain"

// sampleMentors es el directorio inicial de mentores verificados.
var sampleMentors = []domain.Mentor{
	{
		Name:            "Dr. Adebayo Johnson",
		Email:           "adebayo.johnson@lifemap.com",
		Bio:             "Experienced educator with 15+ years in Nigerian higher education. Specializes in academic excellence and career guidance for young professionals.",
		Expertise:       []string{"Academic Excellence", "Career Guidance", "Study Skills", "Research Methods"},
		Categories:      []string{"academic", "career"},
		Availability:    "weekly",
		Location:        "Lagos, Nigeria",
		Experience:      "15+ years",
		Education:       "PhD in Education, University of Lagos",
		Languages:       []string{"English", "Yoruba"},
		Rating:          4.8,
		TotalMentees:    47,
		Verified:        true,
		ProfileImage:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Specializations: []string{"University Applications", "Academic Writing", "Career Transitions"},
	},
	{
		Name:            "Pastor Grace Okafor",
		Email:           "grace.okafor@lifemap.com",
		Bio:             "Youth pastor and spiritual counselor dedicated to helping young people discover their purpose in God and navigate life's challenges with faith.",
		Expertise:       []string{"Spiritual Growth", "Purpose Discovery", "Christian Living", "Youth Ministry"},
		Categories:      []string{"spiritual", "personal"},
		Availability:    "weekly",
		Location:        "Abuja, Nigeria",
		Experience:      "12+ years",
		Education:       "Masters in Theology, Nigerian Baptist Seminary",
		Languages:       []string{"English", "Igbo"},
		Rating:          4.9,
		TotalMentees:    63,
		Verified:        true,
		ProfileImage:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		Specializations: []string{"Purpose Discovery", "Faith Development", "Life Decisions"},
	},
	{
		Name:            "Engr. Kemi Adeleke",
		Email:           "kemi.adeleke@lifemap.com",
		Bio:             "Software engineer and tech entrepreneur. Passionate about empowering Nigerian youth with digital skills and leadership capabilities.",
		Expertise:       []string{"Technology", "Entrepreneurship", "Leadership", "Digital Skills", "Coding"},
		Categories:      []string{"career", "leadership"},
		Availability:    "biweekly",
		Location:        "Lagos, Nigeria",
		Experience:      "10+ years",
		Education:       "BSc Computer Engineering, University of Ibadan",
		Languages:       []string{"English"},
		Rating:          4.7,
		TotalMentees:    34,
		Verified:        true,
		ProfileImage:    "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=150&h=150&fit=crop&crop=face",
		Specializations: []string{"Software Development", "Tech Startups", "Digital Marketing"},
	},
	{
		Name:            "Dr. Ibrahim Musa",
		Email:           "ibrahim.musa@lifemap.com",
		Bio:             "Clinical psychologist specializing in youth mental health, stress management, and personal development for Nigerian students and young professionals.",
		Expertise:       []string{"Mental Health", "Personal Development", "Stress Management", "Counseling"},
		Categories:      []string{"wellness", "personal"},
		Availability:    "weekly",
		Location:        "Kano, Nigeria",
		Experience:      "8+ years",
		Education:       "PhD Clinical Psychology, Ahmadu Bello University",
		Languages:       []string{"English", "Hausa"},
		Rating:          4.8,
		TotalMentees:    52,
		Verified:        true,
		ProfileImage:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		Specializations: []string{"Anxiety Management", "Academic Stress", "Self-Confidence"},
	},
	{
		Name:            "Mrs. Funmi Akintola",
		Email:           "funmi.akintola@lifemap.com",
		Bio:             "Business development manager and leadership coach. Helps young professionals navigate corporate Nigeria and build successful careers.",
		Expertise:       []string{"Career Development", "Leadership", "Professional Growth", "Business Strategy"},
		Categories:      []string{"career", "leadership"},
		Availability:    "monthly",
		Location:        "Lagos, Nigeria",
		Experience:      "14+ years",
		Education:       "MBA, Lagos Business School",
		Languages:       []string{"English", "Yoruba"},
		Rating:          4.6,
		TotalMentees:    41,
		Verified:        true,
		ProfileImage:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		Specializations: []string{"Corporate Leadership", "Professional Networking", "Career Advancement"},
	},
	{
		Name:            "Prof. Chioma Ezekiel",
		Email:           "chioma.ezekiel@lifemap.com",
		Bio:             "University professor and academic research specialist. Guides students through higher education success and research methodologies.",
		Expertise:       []string{"Academic Research", "Higher Education", "Study Methods", "Research Writing"},
		Categories:      []string{"academic"},
		Availability:    "weekly",
		Location:        "Enugu, Nigeria",
		Experience:      "20+ years",
		Education:       "PhD Biochemistry, University of Nigeria Nsukka",
		Languages:       []string{"English", "Igbo"},
		Rating:          4.9,
		TotalMentees:    78,
		Verified:        true,
		ProfileImage:    "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?w=150&h=150&fit=crop&crop=face",
		Specializations: []string{"PhD Guidance", "Research Methodology", "Academic Publishing"},
	},
	{
		Name:            "Mr. David Olatunji",
		Email:           "david.olatunji@lifemap.com",
		Bio:             "Financial advisor and investment specialist. Teaches financial literacy and wealth building strategies to young Nigerians.",
		Expertise:       []string{"Financial Literacy", "Investment", "Money Management", "Financial Planning"},
		Categories:      []string{"personal", "career"},
		Availability:    "biweekly",
		Location:        "Abuja, Nigeria",
		Experience:      "11+ years",
		Education:       "MSc Finance, University of Abuja",
		Languages:       []string{"English", "Yoruba"},
		Rating:          4.5,
		TotalMentees:    29,
		Verified:        true,
		ProfileImage:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=150&h=150&fit=crop&crop=face",
		Specializations: []string{"Personal Finance", "Investment Strategy", "Financial Planning"},
	},
	{
		Name:            "Rev. Sister Mary Okonkwo",
		Email:           "mary.okonkwo@lifemap.com",
		Bio:             "Catholic nun and educator focused on holistic youth development, spiritual formation, and community service leadership.",
		Expertise:       []string{"Spiritual Formation", "Character Development", "Community Service", "Youth Ministry"},
		Categories:      []string{"spiritual", "personal"},
		Availability:    "weekly",
		Location:        "Owerri, Nigeria",
		Experience:      "16+ years",
		Education:       "Masters in Religious Studies, Pontifical Urban University",
		Languages:       []string{"English", "Igbo"},
		Rating:          4.8,
		TotalMentees:    56,
		Verified:        true,
		ProfileImage:    "https://images.unsplash.com/photo-1559209172-e8d9ac195569?w=150&h=150&fit=crop&crop=face",
		Specializations: []string{"Character Building", "Service Leadership", "Faith Formation"},
	},
}

// SampleMentors devuelve una copia del directorio inicial.
func SampleMentors() []domain.Mentor {
	mentors := make([]domain.Mentor, len(sampleMentors))
	for i, m := range sampleMentors {
		m.Expertise = append([]string(nil), m.Expertise...)
		m.Categories = append([]string(nil), m.Categories...)
		m.Languages = append([]string(nil), m.Languages...)
		m.Specializations = append([]string(nil), m.Specializations...)
		mentors[i] = m
	}
	return mentors
}
