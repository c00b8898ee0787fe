package service

import "lifemap/internal/domain"

// resourceCatalog es el catalogo estatico de recursos. Solo lectura en runtime.
var resourceCatalog = []domain.Resource{
	{
		ID:          1,
		Title:       "The 7 Habits of Highly Effective People",
		Type:        "Book",
		Category:    "personal",
		Description: "Stephen Covey's timeless principles for personal and professional effectiveness",
		Link:        "https://www.amazon.com/7-Habits-Highly-Effective-People/dp/0743269519",
		Duration:    "375 pages",
		Level:       "Beginner",
		Rating:      4.8,
	},
	{
		ID:          2,
		Title:       "How to Study Effectively - Nigerian Student Guide",
		Type:        "Article",
		Category:    "academic",
		Description: "Proven study techniques specifically designed for Nigerian educational system",
		Link:        "https://www.nairaland.com/6891234/how-study-effectively-nigerian-students",
		Duration:    "12 min read",
		Level:       "Beginner",
		Rating:      4.6,
	},
	{
		ID:          3,
		Title:       "Daily Devotions for Young Adults",
		Type:        "Devotional",
		Category:    "spiritual",
		Description: "Morning and evening devotions to strengthen your relationship with God",
		Link:        "https://www.youversion.com/reading-plans",
		Duration:    "5 min daily",
		Level:       "All levels",
		Rating:      4.9,
	},
	{
		ID:          4,
		Title:       "Leadership Skills for African Youth",
		Type:        "Video Course",
		Category:    "leadership",
		Description: "Practical leadership principles taught by successful African leaders",
		Link:        "https://youtu.be/J8VYv7vj568?si=515NN4cMHDDmHgqB",
		Duration:    "2.5 hours",
		Level:       "Intermediate",
		Rating:      4.7,
	},
	{
		ID:          5,
		Title:       "Building Emotional Intelligence",
		Type:        "Podcast",
		Category:    "personal",
		Description: "Daniel Goleman's insights on understanding and managing emotions",
		Link:        "https://podcasts.apple.com/us/podcast/ten-percent-happier-with-dan-harris/id1087147821",
		Duration:    "45 min",
		Level:       "Beginner",
		Rating:      4.5,
	},
	{
		ID:          6,
		Title:       "Study Techniques That Actually Work",
		Type:        "Video",
		Category:    "academic",
		Description: "Science-backed methods to improve learning and retention",
		Link:        "https://www.youtube.com/watch?v=VcT8puLpNKA",
		Duration:    "25 min",
		Level:       "Beginner",
		Rating:      4.6,
	},
	{
		ID:          7,
		Title:       "Mindfulness for Students",
		Type:        "Course",
		Category:    "wellness",
		Description: "Practical meditation and stress management techniques",
		Link:        "https://www.headspace.com/meditation/students",
		Duration:    "1.5 hours",
		Level:       "Beginner",
		Rating:      4.8,
	},
	{
		ID:          8,
		Title:       "Career Planning for Nigerian Graduates",
		Type:        "eBook",
		Category:    "career",
		Description: "Navigate the Nigerian job market with confidence and strategy",
		Link:        "https://www.jobberman.com/career-advice",
		Duration:    "120 pages",
		Level:       "Intermediate",
		Rating:      4.4,
	},
	{
		ID:          9,
		Title:       "Bible Study Methods for Beginners",
		Type:        "Guide",
		Category:    "spiritual",
		Description: "Simple approaches to personal Bible study and reflection",
		Link:        "https://www.biblestudytools.com/bible-study/topical-studies/how-to-study-the-bible.html",
		Duration:    "15 min daily",
		Level:       "Beginner",
		Rating:      4.7,
	},
	{
		ID:          10,
		Title:       "Public Speaking Confidence Masterclass",
		Type:        "Video Course",
		Category:    "leadership",
		Description: "Overcome fear and become a confident public speaker",
		Link:        "https://www.youtube.com/watch?v=Unzc731iCUY",
		Duration:    "3 hours",
		Level:       "Beginner",
		Rating:      4.5,
	},
	{
		ID:          11,
		Title:       "Financial Literacy for Young Nigerians",
		Type:        "Article",
		Category:    "personal",
		Description: "Essential money management skills for the Nigerian economy",
		Link:        "https://www.cbn.gov.ng/out/2013/ccd/cbn%20financial%20literacy%20framework.pdf",
		Duration:    "20 min read",
		Level:       "Beginner",
		Rating:      4.3,
	},
	{
		ID:          12,
		Title:       "JAMB Success Strategies 2024",
		Type:        "Guide",
		Category:    "academic",
		Description: "Comprehensive guide to excel in JAMB and gain university admission",
		Link:        "https://www.jamb.gov.ng/",
		Duration:    "50 pages",
		Level:       "Intermediate",
		Rating:      4.8,
	},
	{
		ID:          13,
		Title:       "Entrepreneurship in Nigeria",
		Type:        "Podcast",
		Category:    "career",
		Description: "Success stories and practical advice from Nigerian entrepreneurs",
		Link:        "https://techpoint.africa/podcast/",
		Duration:    "40 min",
		Level:       "Intermediate",
		Rating:      4.6,
	},
	{
		ID:          14,
		Title:       "Mental Health Awareness for Students",
		Type:        "Video",
		Category:    "wellness",
		Description: "Recognizing and managing stress, anxiety, and depression",
		Link:        "https://www.youtube.com/watch?v=3QIfkeA6HBY",
		Duration:    "30 min",
		Level:       "All levels",
		Rating:      4.7,
	},
	{
		ID:          15,
		Title:       "Purpose Driven Life Study Guide",
		Type:        "Book",
		Category:    "spiritual",
		Description: "Rick Warren's guide to discovering your life's purpose",
		Link:        "https://www.amazon.com/Purpose-Driven-Life-Rick-Warren/dp/0310205719",
		Duration:    "334 pages",
		Level:       "Beginner",
		Rating:      4.8,
	},
	{
		ID:          16,
		Title:       "Digital Skills for Nigerian Youth",
		Type:        "Course",
		Category:    "career",
		Description: "Learn in-demand digital skills: coding, design, and marketing",
		Link:        "https://www.coursera.org/specializations/google-it-support",
		Duration:    "6 months",
		Level:       "Beginner",
		Rating:      4.5,
	},
	{
		ID:          17,
		Title:       "Time Management for Busy Students",
		Type:        "Article",
		Category:    "academic",
		Description: "Proven strategies to balance studies, work, and personal life",
		Link:        "https://www.mindtools.com/pages/article/newHTE_07.htm",
		Duration:    "10 min read",
		Level:       "Beginner",
		Rating:      4.4,
	},
	{
		ID:          18,
		Title:       "Building Healthy Relationships",
		Type:        "Video",
		Category:    "personal",
		Description: "Creating meaningful connections and setting healthy boundaries",
		Link:        "https://www.youtube.com/watch?v=1Evwgu369Jw",
		Duration:    "35 min",
		Level:       "All levels",
		Rating:      4.6,
	},
	{
		ID:          19,
		Title:       "Nigerian History and Cultural Pride",
		Type:        "eBook",
		Category:    "personal",
		Description: "Understanding your roots and building cultural confidence",
		Link:        "https://www.nigeriagalleria.com/Nigeria/Nigeria_History.html",
		Duration:    "200 pages",
		Level:       "Intermediate",
		Rating:      4.5,
	},
	{
		ID:          20,
		Title:       "Prayer and Meditation Practices",
		Type:        "Guide",
		Category:    "spiritual",
		Description: "Different approaches to prayer and spiritual meditation",
		Link:        "https://www.openbible.info/topics/prayer_and_meditation",
		Duration:    "20 min daily",
		Level:       "All levels",
		Rating:      4.8,
	},
	{
		ID:          21,
		Title:       "Networking for Career Success",
		Type:        "Podcast",
		Category:    "career",
		Description: "Building professional relationships in the Nigerian business environment",
		Link:        "https://www.linkedin.com/learning/",
		Duration:    "35 min",
		Level:       "Intermediate",
		Rating:      4.3,
	},
	{
		ID:          22,
		Title:       "Healthy Living on a Student Budget",
		Type:        "Article",
		Category:    "wellness",
		Description: "Nutrition, exercise, and wellness tips for cash-strapped students",
		Link:        "https://www.healthline.com/nutrition/19-ways-to-eat-healthy-on-a-budget",
		Duration:    "15 min read",
		Level:       "Beginner",
		Rating:      4.5,
	},
	{
		ID:          23,
		Title:       "Critical Thinking Skills Development",
		Type:        "Course",
		Category:    "academic",
		Description: "Enhance your analytical and problem-solving abilities",
		Link:        "https://www.edx.org/course/critical-thinking",
		Duration:    "4 weeks",
		Level:       "Intermediate",
		Rating:      4.7,
	},
	{
		ID:          24,
		Title:       "Overcoming Fear and Building Confidence",
		Type:        "Video",
		Category:    "personal",
		Description: "Practical strategies to build self-confidence and overcome limiting beliefs",
		Link:        "https://www.youtube.com/watch?v=w-HYZv6HzAs",
		Duration:    "42 min",
		Level:       "All levels",
		Rating:      4.6,
	},
}

var resourceCategories = []domain.ResourceCategory{
	{ID: CategoryAll, Name: "All Resources"},
	{ID: "personal", Name: "Personal Development"},
	{ID: "academic", Name: "Academic Success"},
	{ID: "spiritual", Name: "Spiritual Growth"},
	{ID: "career", Name: "Career & Skills"},
	{ID: "leadership", Name: "Leadership"},
	{ID: "wellness", Name: "Mental Wellness"},
}

// Catalog devuelve una copia del catalogo estatico.
func Catalog() []domain.Resource {
	out := make([]domain.Resource, len(resourceCatalog))
	copy(out, resourceCatalog)
	return out
}

// ResourceCategories devuelve los filtros disponibles, incluido "all".
func ResourceCategories() []domain.ResourceCategory {
	out := make([]domain.ResourceCategory, len(resourceCategories))
	copy(out, resourceCategories)
	return out
}
