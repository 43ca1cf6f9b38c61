package tfidf

var stopWords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "across", "after", "afterwards", "again", "against", "all", "almost",
		"alone", "along", "already", "also", "although", "always", "am", "among", "amongst", "an",
		"and", "another", "any", "anyhow", "anyone", "anything", "anyway", "anywhere", "are", "around",
		"as", "at", "back", "be", "became", "because", "become", "becomes", "becoming", "been",
		"before", "beforehand", "behind", "being", "below", "beside", "besides", "between", "beyond", "both",
		"but", "by", "can", "cannot", "could", "did", "do", "does", "done", "down",
		"due", "during", "each", "eg", "either", "else", "elsewhere", "enough", "etc", "even",
		"ever", "every", "everyone", "everything", "everywhere", "except", "few", "for", "former", "formerly",
		"from", "further", "get", "give", "go", "had", "has", "have", "he", "hence",
		"her", "here", "hereafter", "hereby", "herein", "hers", "herself", "him", "himself", "his",
		"how", "however", "ie", "if", "in", "indeed", "into", "is", "it", "its",
		"itself", "just", "keep", "last", "latter", "least", "less", "made", "many", "may",
		"me", "meanwhile", "might", "mine", "more", "moreover", "most", "mostly", "much", "must",
		"my", "myself", "namely", "neither", "never", "nevertheless", "next", "no", "nobody", "none",
		"nor", "not", "nothing", "now", "nowhere", "of", "off", "often", "on", "once",
		"only", "onto", "or", "other", "others", "otherwise", "our", "ours", "ourselves", "out",
		"over", "own", "per", "perhaps", "please", "put", "rather", "re", "same", "see",
		"seem", "seemed", "seeming", "seems", "several", "she", "should", "since", "so", "some",
		"somehow", "someone", "something", "sometime", "sometimes", "somewhere", "still", "such", "take", "than",
		"that", "the", "their", "them", "themselves", "then", "thence", "there", "thereafter", "thereby",
		"therefore", "therein", "these", "they", "this", "those", "though", "through", "throughout", "thru",
		"thus", "to", "together", "too", "toward", "towards", "under", "until", "up", "upon",
		"us", "very", "via", "was", "we", "well", "were", "what", "whatever", "when",
		"whence", "whenever", "where", "whereafter", "whereas", "whereby", "wherein", "whereupon", "wherever", "whether",
		"which", "while", "whither", "who", "whoever", "whole", "whom", "whose", "why", "will",
		"with", "within", "without", "would", "yet", "you", "your", "yours", "yourself", "yourselves",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
