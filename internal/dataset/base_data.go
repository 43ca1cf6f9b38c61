package dataset

import "github.com/alexanderramin/tutor/internal/corpus"

// baseExtras are curated pairs added on top of the built-in corpus.
var baseExtras = map[string][]corpus.QAPair{
	"Mathematics": {
		{Question: "What is a quadratic equation?", Answer: "A quadratic equation is a second-degree polynomial equation in the form ax² + bx + c = 0, where a, b, and c are constants and a ≠ 0. These equations are fundamental in algebra and are used to model many real-world scenarios. Quadratic equations can have zero, one, or two real solutions, and can be solved using factoring, completing the square, or the quadratic formula. The graph of a quadratic equation is a parabola, which can open upward or downward depending on the sign of the 'a' coefficient."},
		{Question: "What are matrices?", Answer: "Matrices are rectangular arrays of numbers, symbols, or expressions arranged in rows and columns. They are fundamental mathematical objects used in linear algebra and have applications in computer graphics, physics, engineering, statistics, and many other fields. Key operations on matrices include addition, subtraction, multiplication, and finding inverses and determinants. An m×n matrix has m rows and n columns. Matrices can represent linear transformations, systems of linear equations, graphs, and data in machine learning. Special types include identity matrices, diagonal matrices, and symmetric matrices. The study of matrices is central to linear algebra, providing tools for solving complex multi-dimensional problems efficiently."},
		{Question: "What is 2+2?", Answer: "The sum of 2 and 2 is 4."},
		{Question: "What is 5+7?", Answer: "The sum of 5 and 7 is 12."},
		{Question: "What is 10-3?", Answer: "The difference between 10 and 3 is 7."},
		{Question: "What is 8*9?", Answer: "The product of 8 and 9 is 72."},
		{Question: "What is 20/4?", Answer: "The result of dividing 20 by 4 is 5."},
		{Question: "What is 15/2?", Answer: "The result of dividing 15 by 2 is 7.5."},
		{Question: "What is 2^3?", Answer: "2 raised to the power of 3 is 8."},
		{Question: "What is the square root of 9?", Answer: "The square root of 9 is 3."},
		{Question: "What is the square root of 16?", Answer: "The square root of 16 is 4."},
		{Question: "What is the value of pi?", Answer: "Pi (π) is approximately 3.14159, the ratio of a circle's circumference to its diameter."},
	},
	"Science": {
		{Question: "What is biology?", Answer: "Biology is the scientific study of life and living organisms. It examines the structure, function, growth, origin, evolution, and distribution of living things. Biology is divided into various specialized fields such as anatomy, physiology, botany, zoology, microbiology, genetics, ecology, and more. Each field focuses on different aspects of life, from molecular processes within cells to interactions between entire ecosystems. The core principles of biology include cell theory (all living things are made of cells), evolution (populations change over time through natural selection), genetics (traits are passed from parents to offspring through genes), homeostasis (organisms maintain internal stability), and energy processing (organisms require energy for survival). Understanding biology is essential for advances in medicine, agriculture, environmental conservation, and biotechnology."},
		{Question: "What is an amoeba?", Answer: "An amoeba is a type of single-celled organism (protozoan) that belongs to the phylum Sarcodina. Characterized by their ability to change shape, amoebas move by extending temporary foot-like projections called pseudopodia ('false feet'). They are typically found in freshwater environments such as ponds, lakes, and slow-moving streams, though some species live in soil or as parasites in animals. Amoebas feed by engulfing food particles through phagocytosis, where the cell membrane surrounds the food and brings it inside the cell within a food vacuole. They reproduce asexually through binary fission, where one cell divides into two identical daughter cells. While most amoebas are harmless, certain species like Entamoeba histolytica can cause diseases such as amoebic dysentery in humans. Amoebas are studied extensively in biology as examples of simple cellular organisms and are important in understanding cellular processes and evolution."},
	},
	"History": {
		{Question: "Who was Abraham Lincoln?", Answer: "Abraham Lincoln was the 16th President of the United States, serving from March 1861 until his assassination in April 1865. Lincoln led the United States through the American Civil War, preserving the Union, abolishing slavery, strengthening the federal government, and modernizing the U.S. economy. He is remembered for his character, his speeches and letters, and for issuing the Emancipation Proclamation (1863) that began the process of ending slavery. His Gettysburg Address of 1863 became an iconic statement of America's dedication to the principles of nationalism, republicanism, equal rights, liberty, and democracy. Lincoln is consistently ranked by scholars and the public as one of the greatest U.S. presidents. His assassination made him a martyr for the ideals of national unity and equality."},
		{Question: "Who was Rana Pratap Singh?", Answer: "Maharana Pratap Singh I was a renowned Hindu Rajput king of Mewar, a region in northwestern India in the present-day state of Rajasthan. Born on May 9, 1540, he was the eldest son of Udai Singh II and ruled from 1572 until his death in 1597. Maharana Pratap is widely recognized for his resistance against the expansion of the Mughal Empire under Emperor Akbar and his refusal to submit to Mughal rule, maintaining Mewar's independence. His most famous battle was the Battle of Haldighati in 1576 against Akbar's forces led by Man Singh I of Amber. Although Maharana Pratap was forced to retreat from Haldighati, he never surrendered to the Mughals and continued guerrilla warfare from the hills of Mewar. He is celebrated as a symbol of Rajput valor, patriotism, and the struggle for independence, and is revered as a hero across India for his courage and principles."},
	},
	"Programming": {
		{Question: "What is Python?", Answer: "Python is a high-level, interpreted programming language known for its readability and versatility. Created by Guido van Rossum and first released in 1991, Python emphasizes code readability with its notable use of significant whitespace. Its language constructs and object-oriented approach aim to help programmers write clear, logical code for small and large-scale projects. Python supports multiple programming paradigms, including procedural, object-oriented, and functional programming. It features a dynamic type system, automatic memory management, and a comprehensive standard library. Python is widely used in web development, data analysis, artificial intelligence, scientific computing, automation, and many other fields. Its simplicity and readability make it an excellent language for beginners, while its powerful libraries and frameworks make it valuable for advanced developers. Major implementations include CPython (the reference implementation), PyPy, Jython, and IronPython."},
	},
}

// DefaultSources are the public datasets fetched by a download build.
var DefaultSources = map[string][]string{
	"Mathematics": {
		"https://raw.githubusercontent.com/huggingface/datasets/master/datasets/math_qa/sample_data/sample.json",
		"https://raw.githubusercontent.com/hendrycks/math/master/train_sample.json",
	},
	"Science": {
		"https://raw.githubusercontent.com/allenai/sciq/master/sciq_data/train_sciq.json",
	},
	"History": {
		"https://raw.githubusercontent.com/manindersingh030/HistoryGPT-Dataset/main/data-sample.json",
	},
	"Programming": {
		"https://raw.githubusercontent.com/coding-horror/basic-computer-games/master/00_Alternate_Languages/README.md",
		"https://raw.githubusercontent.com/karpathy/minGPT/master/README.md",
	},
}
