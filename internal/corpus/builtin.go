package corpus

const (
	answerPythagorean = "The Pythagorean theorem states that in a right-angled triangle, the square of the length of the hypotenuse is equal to the sum of the squares of the other two sides. It is represented by the equation: a² + b² = c², where c is the length of the hypotenuse and a and b are the lengths of the other two sides."
	answerQuadratic   = "Quadratic equations can be solved using the quadratic formula: x = (-b ± √(b² - 4ac)) / 2a, where ax² + bx + c = 0. Alternatively, you can solve by factoring, completing the square, or graphing, depending on the specific equation."
	answerMatrices    = "Matrices are rectangular arrays of numbers, symbols, or expressions arranged in rows and columns. They are used in linear algebra for representing linear transformations and solving systems of linear equations."
	answerCalculus    = "Calculus is a branch of mathematics that focuses on the study of continuous change. It has two main branches: differential calculus (concerning rates of change and slopes of curves) and integral calculus (concerning accumulation of quantities and areas under curves)."
	answerAlgebra     = "Algebra is a branch of mathematics that uses symbols and letters to represent numbers and quantities in formulas and equations. It introduces the concept of variables and provides tools for solving equations."
	answerEquations   = "Equations are mathematical statements that assert the equality of two expressions. They typically contain variables and state that the expressions on either side of the equals sign have the same value."
	answerTrig        = "Trigonometry is a branch of mathematics that studies the relationships between the sides and angles of triangles. It defines trigonometric functions such as sine, cosine, and tangent, which relate the angles of a triangle to the lengths of its sides."
	answerGeometry    = "Geometry is a branch of mathematics concerned with questions of shape, size, relative position of figures, and the properties of space. It includes the study of points, lines, angles, surfaces, and solids."

	answerQuadraticFormula = "The quadratic formula is used to solve equations in the form ax² + bx + c = 0. The formula is: x = (-b ± √(b² - 4ac)) / 2a, where a, b, and c are coefficients in the quadratic equation. The discriminant (b² - 4ac) determines the number of solutions: if positive, there are two real solutions; if zero, there is one real solution; if negative, there are two complex solutions."
	answerFormula          = "A formula in mathematics is a fact or rule written with mathematical symbols. It typically uses an equals sign (=) to show that two expressions have the same value. Formulas express relationships between various quantities and provide a concise way to solve problems. Common mathematical formulas include the quadratic formula (x = (-b ± √(b² - 4ac)) / 2a), the area of a circle (A = πr²), the Pythagorean theorem (a² + b² = c²), and many others specific to different branches of mathematics."
	answerGraph            = "In mathematics, a graph is a structure used to model pairwise relations between objects. Graphs consist of vertices (also called nodes or points) which are connected by edges (also called links or lines). Graphs can be used to model many types of relations and processes in physical, biological, social, and information systems. In mathematics, graphs are used in the study of graph theory."

	answerPhotosynthesis = "Photosynthesis is the process by which green plants, algae, and some bacteria convert light energy, usually from the sun, into chemical energy in the form of glucose or other sugars. Plants take in carbon dioxide and water, and with the energy from sunlight, convert them into glucose and oxygen."
	answerStates         = "The four primary states of matter are solid, liquid, gas, and plasma. Each state has unique properties based on the arrangement and energy of their particles. Solids have fixed shape and volume, liquids have fixed volume but take the shape of their container, gases expand to fill their container, and plasma is an ionized gas that conducts electricity."
	answerMethod         = "The scientific method is a systematic approach to research that involves making observations, formulating a hypothesis, testing the hypothesis through experiments, analyzing data, and drawing conclusions. It is the foundation of scientific inquiry and ensures that findings are based on evidence rather than assumptions."
	answerRespiration    = "Cellular respiration is the process by which cells convert nutrients into energy in the form of ATP. It involves three main stages: glycolysis, the Krebs cycle (citric acid cycle), and the electron transport chain. This process requires oxygen and produces carbon dioxide as a waste product."
	answerBiology        = "Biology is the scientific study of living organisms and their interactions with each other and their environments. It encompasses various specialized fields such as molecular biology, cellular biology, genetics, ecology, evolutionary biology, and physiology."
	answerChemistry      = "Chemistry is the scientific discipline that studies the composition, structure, properties, and changes of matter. It examines atoms, the elements, how they bond to form molecules and compounds, and how substances interact with energy."
	answerPhysics        = "Physics is the natural science that studies matter, its motion and behavior through space and time, and the related entities of energy and force. It is one of the most fundamental scientific disciplines, with its main goal being to understand how the universe behaves."
	answerEcology        = "Ecology is the branch of biology that studies the relationships between living organisms, including humans, and their physical environment. It examines how organisms interact with each other and with their environment, including the distribution and abundance of organisms."
)

// Builtin returns the corpus used when nothing can be loaded from disk.
func Builtin() LegacyCorpus {
	return LegacyCorpus{Subjects: []SubjectData{
		{
			Name: "Mathematics",
			Pairs: []QAPair{
				{"What is the Pythagorean theorem?", answerPythagorean},
				{"How do you solve a quadratic equation?", answerQuadratic},
				{"What are matrices?", answerMatrices},
				{"What is calculus?", answerCalculus},
				{"What is algebra?", answerAlgebra},
				{"What are equations?", answerEquations},
				{"What is trigonometry?", answerTrig},
				{"What is geometry?", answerGeometry},
			},
			Rules: DefaultRules("Mathematics"),
		},
		{
			Name: "Science",
			Pairs: []QAPair{
				{"What is photosynthesis?", answerPhotosynthesis},
				{"What are the states of matter?", answerStates},
				{"What is the scientific method?", answerMethod},
				{"What is cellular respiration?", answerRespiration},
				{"What is biology?", answerBiology},
				{"What is chemistry?", answerChemistry},
				{"What is physics?", answerPhysics},
				{"What is ecology?", answerEcology},
			},
			Rules: DefaultRules("Science"),
		},
		{
			Name: "History",
			Pairs: []QAPair{
				{"Who was Albert Einstein?", "Albert Einstein (1879-1955) was a theoretical physicist who developed the theory of relativity, one of the two pillars of modern physics. His work is also known for its influence on the philosophy of science. He is best known for his mass–energy equivalence formula E = mc²."},
				{"When did World War II end?", "World War II ended in Europe on May 8, 1945 (V-E Day) when Nazi Germany surrendered, and in Asia on September 2, 1945 (V-J Day) when Japan formally surrendered. The war claimed an estimated 70-85 million lives and was the deadliest conflict in human history."},
				{"Who was Rana Pratap Singh?", "Maharana Pratap Singh (1540-1597) was a Hindu Rajput king of Mewar in Rajasthan, India. He is known for his resistance against the expansionist policy of the Mughal Emperor Akbar and for the Battle of Haldighati in 1576, where he fought bravely despite being outnumbered."},
				{"What was the Renaissance?", "The Renaissance was a period in European history marking the transition from the Middle Ages to modernity, spanning roughly from the 14th to the 17th century. It was characterized by renewed interest in classical learning and values, artistic and architectural innovations, scientific discoveries, and increased cultural and intellectual exchange."},
				{"What was the Industrial Revolution?", "The Industrial Revolution was a period of major industrialization and innovation that took place during the late 1700s and early 1800s. It began in Great Britain and spread to other parts of Europe and North America, fundamentally changing economic and social organization through the development of machine-based manufacturing, new energy sources, and transportation systems."},
				{"Who was Mahatma Gandhi?", "Mahatma Gandhi (1869-1948) was an Indian lawyer, anti-colonial nationalist, and political ethicist who employed nonviolent resistance to lead the successful campaign for India's independence from British rule. His philosophy of nonviolent civil disobedience inspired movements for civil rights and freedom across the world."},
				{"What was the Cold War?", "The Cold War was a period of geopolitical tension between the United States and the Soviet Union and their respective allies from approximately 1947 to 1991. It was characterized by proxy wars, an arms race, ideological competition between capitalism and communism, and a constant threat of nuclear war."},
				{"What were the Crusades?", "The Crusades were a series of religious wars initiated, supported, and sometimes directed by the Latin Church in the medieval period. The best-known Crusades were those to the Holy Land in the period between 1095 and 1291, which were fought to recover Jerusalem and other holy sites from Islamic rule."},
			},
		},
		{
			Name: "Programming",
			Pairs: []QAPair{
				{"What is a variable in programming?", "A variable in programming is a storage location paired with an associated symbolic name that contains a value. Variables can be used to store numbers, text, or more complex data structures. The value of a variable can be changed throughout the program's execution."},
				{"What is object-oriented programming?", "Object-oriented programming (OOP) is a programming paradigm based on the concept of 'objects', which can contain data (attributes) and code (methods). OOP features include encapsulation, inheritance, polymorphism, and abstraction, which help organize code and make it more reusable and maintainable."},
				{"What is a function?", "In programming, a function is a reusable block of code designed to perform a specific task. Functions can take inputs (parameters), process them, and return outputs. They help organize code, reduce repetition, and improve maintainability by breaking complex programs into smaller, manageable pieces."},
				{"What are data structures?", "Data structures are specialized formats for organizing, processing, retrieving and storing data. Common examples include arrays, linked lists, stacks, queues, trees, and hash tables. The choice of data structure affects the efficiency of algorithms and operations performed on the data."},
				{"What is Python?", "Python is a high-level, interpreted programming language known for its readability and simplicity. It emphasizes code readability with its notable use of significant indentation. Python features a dynamic type system and automatic memory management, supporting multiple programming paradigms including procedural, object-oriented, and functional programming."},
				{"What is an algorithm?", "An algorithm is a step-by-step procedure or formula for solving a problem. In programming, algorithms are the foundation for developing efficient and effective solutions. They can be expressed as pseudocode, flowcharts, programming code, or natural language, and are evaluated based on correctness, efficiency, and simplicity."},
				{"What is debugging?", "Debugging is the process of finding and fixing errors, bugs, or unexpected behavior in computer programs. It involves identifying the problem, locating the source of the error, and making necessary corrections. Debugging tools provide features like breakpoints, variable inspection, and step-by-step execution to help programmers track down issues."},
				{"What is a database?", "A database is an organized collection of structured information or data, typically stored electronically in a computer system. Databases are managed using database management systems (DBMS), which provide an interface for creating, querying, updating, and administering databases. Common types include relational, NoSQL, and object-oriented databases."},
			},
		},
	}}
}

// DefaultRules returns the direct keyword answers shipped for subject.
// Rules are checked in order; the first whose keywords all occur wins.
func DefaultRules(subject string) []Rule {
	switch subjectKey(subject) {
	case "mathematics":
		return []Rule{
			{Keywords: []string{"quadratic", "formula"}, Answer: answerQuadraticFormula},
			{Keywords: []string{"quadratic", "equation"}, Answer: answerQuadraticFormula},
			{Keywords: []string{"formula"}, Answer: answerFormula},
			{Keywords: []string{"fromula"}, Answer: answerFormula},
			{Keywords: []string{"graph"}, Answer: answerGraph},
			{Keywords: []string{"pythagorean"}, Answer: answerPythagorean},
			{Keywords: []string{"quadratic"}, Answer: answerQuadratic},
			{Keywords: []string{"matrices"}, Answer: answerMatrices},
			{Keywords: []string{"matrix"}, Answer: answerMatrices},
			{Keywords: []string{"calculus"}, Answer: answerCalculus},
			{Keywords: []string{"algebra"}, Answer: answerAlgebra},
			{Keywords: []string{"equation"}, Answer: answerEquations},
			{Keywords: []string{"trigonometry"}, Answer: answerTrig},
			{Keywords: []string{"geometry"}, Answer: answerGeometry},
		}
	case "science":
		return []Rule{
			{Keywords: []string{"photosynthesis"}, Answer: answerPhotosynthesis},
			{Keywords: []string{"states of matter"}, Answer: answerStates},
			{Keywords: []string{"scientific method"}, Answer: answerMethod},
			{Keywords: []string{"cellular respiration"}, Answer: answerRespiration},
			{Keywords: []string{"biology"}, Answer: answerBiology},
			{Keywords: []string{"chemistry"}, Answer: answerChemistry},
			{Keywords: []string{"physics"}, Answer: answerPhysics},
			{Keywords: []string{"ecology"}, Answer: answerEcology},
		}
	default:
		return nil
	}
}
